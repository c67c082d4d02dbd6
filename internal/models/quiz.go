package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultEmoji       = "📝"
	DefaultTimeLimit   = 15 // seconds per question
	DefaultPoints      = 1
	MinQuestionOptions = 2
	DefaultRandomLimit = 10
	HistoryLimit       = 20
)

// Question is embedded in a quiz, never stored on its own. CorrectAnswer is
// a pointer so a zero index survives the missing-field check and so it can be
// withheld from responses.
type Question struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer *int     `bson:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	TimeLimit     int      `bson:"timeLimit" json:"timeLimit"`
	Points        int      `bson:"points" json:"points"`
}

func (q *Question) ApplyDefaults() {
	if q.TimeLimit == 0 {
		q.TimeLimit = DefaultTimeLimit
	}
	if q.Points == 0 {
		q.Points = DefaultPoints
	}
}

// PointValue returns the question's worth, falling back to the default when
// the stored document predates the points field.
func (q *Question) PointValue() int {
	if q.Points == 0 {
		return DefaultPoints
	}
	return q.Points
}

type Quiz struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Emoji       string             `bson:"emoji" json:"emoji"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	IsPublic    bool               `bson:"isPublic" json:"isPublic"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether userID may mutate or delete the quiz. Admin role
// does not bypass this; only cascading user deletion removes foreign quizzes.
func (q *Quiz) OwnedBy(userID primitive.ObjectID) bool {
	return q.CreatedBy == userID
}

type QuizInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Questions   []Question `json:"questions"`
	Emoji       string     `json:"emoji"`
	IsPublic    *bool      `json:"isPublic"`
}

func (in *QuizInput) Validate() *ValidationError {
	if in.Title == "" || in.Description == "" || in.Category == "" || len(in.Questions) == 0 {
		return &ValidationError{Message: "Missing required fields"}
	}
	if _, err := primitive.ObjectIDFromHex(in.Category); err != nil {
		return &ValidationError{Field: "category", Message: "Invalid category reference"}
	}
	for _, q := range in.Questions {
		if q.Question == "" || len(q.Options) < MinQuestionOptions || q.CorrectAnswer == nil {
			return &ValidationError{Field: "questions", Message: "Invalid question format"}
		}
		if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options) {
			return &ValidationError{Field: "questions", Message: "Invalid question format"}
		}
	}
	return nil
}

// QuizView is the joined response shape: category and creator references
// resolved to their documents.
type QuizView struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Emoji       string             `json:"emoji"`
	Category    CategoryRef        `json:"category"`
	Questions   []Question         `json:"questions"`
	CreatedBy   UserRef            `json:"createdBy"`
	IsPublic    bool               `json:"isPublic"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func NewQuizView(q *Quiz, category CategoryRef, creator UserRef, includeAnswers bool) QuizView {
	questions := q.Questions
	if !includeAnswers {
		questions = WithheldQuestions(questions)
	}
	return QuizView{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Emoji:       q.Emoji,
		Category:    category,
		Questions:   questions,
		CreatedBy:   creator,
		IsPublic:    q.IsPublic,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// WithheldQuestions copies the question list with every correct-answer index
// removed, for responses to quiz takers.
func WithheldQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.CorrectAnswer = nil
		out[i] = q
	}
	return out
}

// QuizSummary is the trimmed shape used by dashboard listings.
type QuizSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Title     string             `json:"title"`
	Category  CategoryRef        `json:"category"`
	CreatedBy UserRef            `json:"createdBy"`
	CreatedAt time.Time          `json:"createdAt"`
}
