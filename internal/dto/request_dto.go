package dto

// Write payloads. Every field is optional at decode time so the same struct
// serves create and partial update; services enforce required fields on create.

type ScheduleItemInput struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Subject   *string `json:"subject" binding:"omitempty,max=200"`
	Status    *string `json:"status" binding:"omitempty,oneof=upcoming in-progress completed"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type QuizInput struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Subject   *string `json:"subject" binding:"omitempty,max=100"`
	Topic     *string `json:"topic" binding:"omitempty,max=200"`
	QuizDate  *string `json:"quiz_date" binding:"omitempty,datetime=2006-01-02"`
	TimeLimit *int    `json:"time_limit" binding:"omitempty,min=1"`
}

type QuizQuestionInput struct {
	Quiz          *uint   `json:"quiz"`
	QuestionText  *string `json:"question_text"`
	OptionA       *string `json:"option_a" binding:"omitempty,max=200"`
	OptionB       *string `json:"option_b" binding:"omitempty,max=200"`
	OptionC       *string `json:"option_c" binding:"omitempty,max=200"`
	OptionD       *string `json:"option_d" binding:"omitempty,max=200"`
	CorrectAnswer *int    `json:"correct_answer" binding:"omitempty,min=0,max=3"`
	Explanation   *string `json:"explanation"`
	Order         *int    `json:"order"`
}

type AssignmentInput struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Subject     *string `json:"subject" binding:"omitempty,max=100"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Description *string `json:"description"`
	Link        *string `json:"link" binding:"omitempty,max=500,url|len=0"`
}

type WeeklyGoalInput struct {
	Text      *string `json:"text" binding:"omitempty,max=300"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	WeekStart *string `json:"week_start" binding:"omitempty,datetime=2006-01-02"`
}

type StudyActivityInput struct {
	Text         *string `json:"text" binding:"omitempty,max=300"`
	ActivityTime *string `json:"activity_time"`
}

type SubjectPerformanceInput struct {
	Subject    *string `json:"subject" binding:"omitempty,max=100"`
	Grade      *string `json:"grade" binding:"omitempty,max=5"`
	Percentage *int    `json:"percentage" binding:"omitempty,min=0,max=100"`
}

type ExamInput struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Subject  *string `json:"subject" binding:"omitempty,max=100"`
	ExamDate *string `json:"exam_date" binding:"omitempty,datetime=2006-01-02"`
}

// SubmitQuizRequest maps question ids to the chosen option index.
type SubmitQuizRequest struct {
	Answers map[string]any `json:"answers"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
