package dto

import "time"

type ScheduleItemResponse struct {
	ID        uint   `json:"id"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// QuizSummaryResponse is the list form of a quiz, without questions.
type QuizSummaryResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	QuizDate  string `json:"quiz_date"`
	DaysUntil int    `json:"daysUntil"`
}

type QuizResponse struct {
	ID        uint                   `json:"id"`
	Title     string                 `json:"title"`
	Subject   string                 `json:"subject"`
	Topic     string                 `json:"topic"`
	QuizDate  string                 `json:"quiz_date"`
	TimeLimit int                    `json:"timeLimit"`
	DaysUntil int                    `json:"daysUntil"`
	Questions []QuizQuestionResponse `json:"questions" copier:"-"`
}

type QuizQuestionResponse struct {
	ID            uint     `json:"id"`
	QuizID        uint     `json:"quiz"`
	QuestionText  string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Order         int      `json:"order"`
}

type QuizAttemptResponse struct {
	ID             uint           `json:"id"`
	QuizID         uint           `json:"quiz"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Answers        map[string]any `json:"answers"`
	CompletedAt    time.Time      `json:"completed_at"`
	Percentage     int            `json:"percentage"`
}

type AssignmentResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Subject     string  `json:"subject"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Link        *string `json:"link"`
}

type AssignmentStatsResponse struct {
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
	Remaining int64 `json:"remaining"`
}

type WeeklyGoalResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	WeekStart string `json:"weekStart"`
}

type StudyActivityResponse struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	ActivityTime time.Time `json:"activityTime"`
}

type SubjectPerformanceResponse struct {
	ID         uint   `json:"id"`
	Subject    string `json:"subject"`
	Grade      string `json:"grade"`
	Percentage int    `json:"percentage"`
}

type ExamResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	ExamDate  string `json:"examDate"`
	DaysUntil int    `json:"daysUntil"`
}

type DashboardResponse struct {
	Schedule           []ScheduleItemResponse       `json:"schedule"`
	UpcomingQuiz       *QuizSummaryResponse         `json:"upcomingQuiz"`
	UpcomingExam       *ExamResponse                `json:"upcomingExam"`
	Assignments        AssignmentStatsResponse      `json:"assignments"`
	WeeklyGoals        []WeeklyGoalResponse         `json:"weeklyGoals"`
	RecentActivities   []StudyActivityResponse      `json:"recentActivities"`
	SubjectPerformance []SubjectPerformanceResponse `json:"subjectPerformance"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
