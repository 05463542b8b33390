package models

// StatusResponse is the generic acknowledgement body returned by write
// endpoints (signup, contribution, registration).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is returned on successful login. Token is the signed bearer
// token asserting Email; the profile fields are echoed for the client UI.
type LoginResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Token     string `json:"token"`
}

// ExamPaperListResponse is returned by GET /contrib/exam_paper.
type ExamPaperListResponse struct {
	Status string      `json:"status"`
	Data   []ExamPaper `json:"data"`
}

// StatusSuccess is the Status value reported by successful operations.
const StatusSuccess = "success"
