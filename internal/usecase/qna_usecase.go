package usecase

import (
	"errors"
	"fmt"
	"time"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/pkg/logger"

	"gorm.io/gorm"
)

type QnAUseCase interface {
	List() ([]*entity.Question, error)
	Get(id string) (*entity.Question, error)
	ListByCategory(categoryName string) ([]*entity.Question, error)
	Create(question *entity.Question) (*entity.Question, error)
	Update(id string, question *entity.Question) (*entity.Question, error)
	Delete(id string) error
	AddAnswer(questionID string, answer *entity.Answer) (*entity.Answer, error)
	AcceptAnswer(questionID, answerID string) (*entity.Answer, error)
}

type qnaUseCase struct {
	questionRepo persistent.QuestionRepository
	logger       *logger.Logger
}

func NewQnAUseCase(questionRepo persistent.QuestionRepository, logger *logger.Logger) QnAUseCase {
	return &qnaUseCase{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (uc *qnaUseCase) List() ([]*entity.Question, error) {
	return uc.questionRepo.List()
}

func (uc *qnaUseCase) Get(id string) (*entity.Question, error) {
	question, err := uc.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := uc.questionRepo.IncrementViews(id); err != nil {
		uc.logger.Error("Failed to increment views for question %s: %v", id, err)
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	question.Views++

	return question, nil
}

func (uc *qnaUseCase) ListByCategory(categoryName string) ([]*entity.Question, error) {
	return uc.questionRepo.ListByCategory(categoryName)
}

func (uc *qnaUseCase) Create(question *entity.Question) (*entity.Question, error) {
	question.ID = ""
	question.AskedDate = time.Now()
	question.Views = 0
	question.Answers = nil

	if err := uc.questionRepo.Create(question); err != nil {
		uc.logger.Error("Failed to create question: %v", err)
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (uc *qnaUseCase) Update(id string, question *entity.Question) (*entity.Question, error) {
	question.ID = id
	if err := uc.questionRepo.Update(question); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.questionRepo.GetByID(id)
}

// Delete removes the question and all of its answers.
func (uc *qnaUseCase) Delete(id string) error {
	if err := uc.questionRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AddAnswer attaches a new answer to an existing question. A missing parent
// question is a not-found condition for the caller, not a server fault.
func (uc *qnaUseCase) AddAnswer(questionID string, answer *entity.Answer) (*entity.Answer, error) {
	if _, err := uc.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	answer.ID = ""
	answer.QuestionID = questionID
	answer.AnsweredDate = time.Now()
	answer.Votes = 0
	answer.IsAccepted = false

	if err := uc.questionRepo.CreateAnswer(answer); err != nil {
		uc.logger.Error("Failed to create answer for question %s: %v", questionID, err)
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	return answer, nil
}

// AcceptAnswer marks one answer as the accepted one. The repository keeps the
// unset-then-set pair transactional; an answer id from another question
// reports not-found without touching any flag.
func (uc *qnaUseCase) AcceptAnswer(questionID, answerID string) (*entity.Answer, error) {
	answer, err := uc.questionRepo.AcceptAnswer(questionID, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return answer, nil
}
