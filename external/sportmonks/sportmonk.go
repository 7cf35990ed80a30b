package sportmonks

// Envelope is the common v3 response wrapper. Data stays a generic JSON
// tree; shaping it is the transformer's job.
type Envelope struct {
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination"`
	Message    string      `json:"message"`
}

type Pagination struct {
	Count       int     `json:"count"`
	PerPage     int     `json:"per_page"`
	CurrentPage int     `json:"current_page"`
	NextPage    *string `json:"next_page"`
	HasMore     bool    `json:"has_more"`
}
