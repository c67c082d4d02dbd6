package service

import (
	"context"
	"log"
	"time"

	"quiz-platform/internal/models"
	"quiz-platform/internal/scoring"
	"quiz-platform/internal/selection"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizService struct {
	QuizRepo        QuizStore
	CategoryRepo    CategoryStore
	UserRepo        UserStore
	LeaderboardRepo LeaderboardStore
	Picker          *selection.Picker
}

func NewQuizService(quizRepo QuizStore, categoryRepo CategoryStore, userRepo UserStore, leaderboardRepo LeaderboardStore, picker *selection.Picker) *QuizService {
	return &QuizService{
		QuizRepo:        quizRepo,
		CategoryRepo:    categoryRepo,
		UserRepo:        userRepo,
		LeaderboardRepo: leaderboardRepo,
		Picker:          picker,
	}
}

// List returns the public quizzes, optionally restricted to one category,
// with correct answers withheld.
func (s *QuizService) List(ctx context.Context, categoryHex string) ([]models.QuizView, error) {
	filter := bson.M{"isPublic": true}
	if categoryHex != "" {
		categoryID, err := primitive.ObjectIDFromHex(categoryHex)
		if err != nil {
			return nil, ErrInvalid("Invalid category reference")
		}
		filter["category"] = categoryID
	}

	quizzes, err := s.QuizRepo.Find(ctx, filter)
	if err != nil {
		log.Printf("Error fetching quizzes: %v", err)
		return nil, ErrInternal("Error fetching quizzes")
	}
	return s.views(ctx, quizzes, false, "Error fetching quizzes")
}

// Mine returns the caller's own quizzes, answers included.
func (s *QuizService) Mine(ctx context.Context, userID primitive.ObjectID) ([]models.QuizView, error) {
	quizzes, err := s.QuizRepo.Find(ctx, bson.M{"createdBy": userID})
	if err != nil {
		log.Printf("Error fetching user quizzes: %v", err)
		return nil, ErrInternal("Error fetching your quizzes")
	}
	return s.views(ctx, quizzes, true, "Error fetching your quizzes")
}

// Get returns one quiz; correct answers are stripped unless explicitly
// requested.
func (s *QuizService) Get(ctx context.Context, id primitive.ObjectID, includeAnswers bool) (*models.QuizView, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching quiz: %v", err)
		return nil, ErrInternal("Error fetching quiz")
	}
	if quiz == nil {
		return nil, ErrNotFound("Quiz not found")
	}
	return s.view(ctx, quiz, includeAnswers, "Error fetching quiz")
}

func (s *QuizService) Create(ctx context.Context, userID primitive.ObjectID, input models.QuizInput) (*models.QuizView, error) {
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}
	categoryID, _ := primitive.ObjectIDFromHex(input.Category)

	now := time.Now()
	quiz := &models.Quiz{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Emoji:       input.Emoji,
		Category:    categoryID,
		Questions:   input.Questions,
		CreatedBy:   userID,
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if quiz.Emoji == "" {
		quiz.Emoji = models.DefaultEmoji
	}
	if input.IsPublic != nil {
		quiz.IsPublic = *input.IsPublic
	}
	for i := range quiz.Questions {
		quiz.Questions[i].ApplyDefaults()
	}

	if err := s.QuizRepo.Create(ctx, quiz); err != nil {
		log.Printf("Error creating quiz: %v", err)
		return nil, ErrInternal("Error creating quiz")
	}
	return s.view(ctx, quiz, true, "Error creating quiz")
}

func (s *QuizService) Update(ctx context.Context, userID, quizID primitive.ObjectID, input models.QuizInput) (*models.QuizView, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		log.Printf("Error updating quiz: %v", err)
		return nil, ErrInternal("Error updating quiz")
	}
	if quiz == nil {
		return nil, ErrNotFound("Quiz not found")
	}
	if !quiz.OwnedBy(userID) {
		return nil, ErrForbidden("Not authorized to update this quiz")
	}
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}
	categoryID, _ := primitive.ObjectIDFromHex(input.Category)

	quiz.Title = input.Title
	quiz.Description = input.Description
	quiz.Category = categoryID
	quiz.Questions = input.Questions
	quiz.Emoji = input.Emoji
	if quiz.Emoji == "" {
		quiz.Emoji = models.DefaultEmoji
	}
	if input.IsPublic != nil {
		quiz.IsPublic = *input.IsPublic
	}
	for i := range quiz.Questions {
		quiz.Questions[i].ApplyDefaults()
	}
	quiz.UpdatedAt = time.Now()

	if err := s.QuizRepo.Save(ctx, quiz); err != nil {
		log.Printf("Error updating quiz: %v", err)
		return nil, ErrInternal("Error updating quiz")
	}
	return s.view(ctx, quiz, true, "Error updating quiz")
}

func (s *QuizService) Delete(ctx context.Context, userID, quizID primitive.ObjectID) error {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		log.Printf("Error deleting quiz: %v", err)
		return ErrInternal("Error deleting quiz")
	}
	if quiz == nil {
		return ErrNotFound("Quiz not found")
	}
	if !quiz.OwnedBy(userID) {
		return ErrForbidden("Not authorized to delete this quiz")
	}
	if err := s.QuizRepo.Delete(ctx, quizID); err != nil {
		log.Printf("Error deleting quiz: %v", err)
		return ErrInternal("Error deleting quiz")
	}
	return nil
}

// SubmitInput is the answer sheet for one quiz run. TimeTaken is seconds
// spent, reported by the client and used only for leaderboard tie-breaks.
type SubmitInput struct {
	Answers   []int `json:"answers"`
	TimeTaken int   `json:"timeTaken"`
}

// Submit grades the answer sheet and records the run on the category
// leaderboard, keeping only the user's best entry per category.
func (s *QuizService) Submit(ctx context.Context, userID, quizID primitive.ObjectID, input SubmitInput) (*scoring.Summary, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		log.Printf("Error submitting quiz: %v", err)
		return nil, ErrInternal("Error submitting quiz")
	}
	if quiz == nil {
		return nil, ErrNotFound("Quiz not found")
	}
	if input.Answers == nil {
		return nil, ErrInvalid("Invalid answers format")
	}
	// Client-reported time; a negative value would win every tie-break.
	if input.TimeTaken < 0 {
		input.TimeTaken = 0
	}

	summary := scoring.Grade(quiz.Questions, input.Answers)

	// Leaderboard recording is best-effort: a failed write never fails the
	// submission response.
	entry := &models.LeaderboardEntry{
		User:        userID,
		Category:    quiz.Category,
		Score:       summary.Score,
		TimeTaken:   input.TimeTaken,
		CompletedAt: time.Now(),
	}
	existing, err := s.LeaderboardRepo.FindForPair(ctx, userID, quiz.Category)
	if err != nil {
		log.Printf("Error reading leaderboard entry: %v", err)
	} else if entry.Supersedes(existing) {
		if err := s.LeaderboardRepo.Upsert(ctx, entry); err != nil {
			log.Printf("Error recording leaderboard entry: %v", err)
		}
	}

	return &summary, nil
}

// Random picks one public quiz of the category uniformly at random and
// returns at most limit of its questions, shuffled, answers withheld.
func (s *QuizService) Random(ctx context.Context, categoryID primitive.ObjectID, limit int) (*models.QuizView, error) {
	ids, err := s.QuizRepo.FindIDs(ctx, bson.M{"category": categoryID, "isPublic": true})
	if err != nil {
		log.Printf("Error fetching random quiz: %v", err)
		return nil, ErrInternal("Error fetching random quiz")
	}
	if len(ids) == 0 {
		return nil, ErrNotFound("No quizzes found in this category")
	}

	quizID := ids[s.Picker.PickIndex(len(ids))]
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil || quiz == nil {
		log.Printf("Error fetching random quiz: %v", err)
		return nil, ErrInternal("Error fetching random quiz")
	}

	quiz.Questions = s.Picker.SampleQuestions(quiz.Questions, limit)
	return s.view(ctx, quiz, false, "Error fetching random quiz")
}

// History returns the caller's recorded runs, most recent first, with
// category references resolved.
func (s *QuizService) History(ctx context.Context, userID primitive.ObjectID) ([]models.HistoryView, error) {
	entries, err := s.LeaderboardRepo.FindByUser(ctx, userID, models.HistoryLimit)
	if err != nil {
		log.Printf("Error fetching quiz history: %v", err)
		return nil, ErrInternal("Error fetching quiz history")
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(entries))
	for _, entry := range entries {
		categoryIDs = append(categoryIDs, entry.Category)
	}
	refs, err := s.CategoryRepo.FindRefs(ctx, categoryIDs)
	if err != nil {
		log.Printf("Error fetching quiz history: %v", err)
		return nil, ErrInternal("Error fetching quiz history")
	}

	history := make([]models.HistoryView, 0, len(entries))
	for _, entry := range entries {
		ref, ok := refs[entry.Category]
		if !ok {
			ref = models.CategoryRef{ID: entry.Category}
		}
		history = append(history, models.HistoryView{
			ID:          entry.ID,
			Category:    ref,
			Score:       entry.Score,
			TimeTaken:   entry.TimeTaken,
			CompletedAt: entry.CompletedAt,
		})
	}
	return history, nil
}

// view resolves one quiz's category and creator references.
func (s *QuizService) view(ctx context.Context, quiz *models.Quiz, includeAnswers bool, failMsg string) (*models.QuizView, error) {
	views, err := s.views(ctx, []models.Quiz{*quiz}, includeAnswers, failMsg)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views is the explicit join step: category and creator ids are resolved in
// bulk and stitched onto the response shapes.
func (s *QuizService) views(ctx context.Context, quizzes []models.Quiz, includeAnswers bool, failMsg string) ([]models.QuizView, error) {
	categoryIDs := make([]primitive.ObjectID, 0, len(quizzes))
	userIDs := make([]primitive.ObjectID, 0, len(quizzes))
	for _, quiz := range quizzes {
		categoryIDs = append(categoryIDs, quiz.Category)
		userIDs = append(userIDs, quiz.CreatedBy)
	}

	categoryRefs, err := s.CategoryRepo.FindRefs(ctx, categoryIDs)
	if err != nil {
		log.Printf("Error resolving category references: %v", err)
		return nil, ErrInternal(failMsg)
	}
	userRefs, err := s.UserRepo.FindRefs(ctx, userIDs)
	if err != nil {
		log.Printf("Error resolving creator references: %v", err)
		return nil, ErrInternal(failMsg)
	}

	views := make([]models.QuizView, 0, len(quizzes))
	for i := range quizzes {
		quiz := &quizzes[i]
		categoryRef, ok := categoryRefs[quiz.Category]
		if !ok {
			categoryRef = models.CategoryRef{ID: quiz.Category}
		}
		userRef, ok := userRefs[quiz.CreatedBy]
		if !ok {
			userRef = models.UserRef{ID: quiz.CreatedBy}
		}
		views = append(views, models.NewQuizView(quiz, categoryRef, userRef, includeAnswers))
	}
	return views, nil
}
