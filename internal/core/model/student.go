package model

type Student struct {
	StudentID   string   `json:"student_id" binding:"required"`
	Email       string   `json:"email"`
	Major       string   `json:"major,omitempty"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	YearOfStudy int64    `json:"year_of_study"`
	Disciplines []string `json:"disciplines"`
	CourseCodes []string `json:"course_codes"`
}

// StudentRecord is a student as stored, including the password hash.
type StudentRecord struct {
	Student
	PasswordHash string `json:"-"`
}

type Registration struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

type AuthenticationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}
