package model

type ErrorResponse struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type ExamListResponse struct {
	Exams []Exam `json:"exams"`
}

type ExamCreateResponse struct {
	Exam Exam `json:"exam"`
}
