package info

// Response identifies the running service
type Response struct {
	Service string `json:"service"`
	Message string `json:"message"`
}
