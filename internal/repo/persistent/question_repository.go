package persistent

import (
	"dawah-portal/internal/entity"
	"dawah-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id string) (*entity.Question, error)
	List() ([]*entity.Question, error)
	ListByCategory(categoryName string) ([]*entity.Question, error)
	Update(question *entity.Question) error
	Delete(id string) error
	IncrementViews(id string) error
	CreateAnswer(answer *entity.Answer) error
	GetAnswerByID(id string) (*entity.Answer, error)
	AcceptAnswer(questionID, answerID string) (*entity.Answer, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *entity.Question) error {
	questionModel := ToQuestionModel(question)
	if questionModel.ID == "" {
		questionModel.ID = uuid.New().String()
	}
	if err := r.db.Create(questionModel).Error; err != nil {
		return err
	}
	*question = *ToQuestionEntity(questionModel)
	return nil
}

func (r *questionRepository) GetByID(id string) (*entity.Question, error) {
	var questionModel model.QuestionModel
	err := r.db.Preload("Category").Preload("Answers").
		Where("id = ?", id).First(&questionModel).Error
	if err != nil {
		return nil, err
	}
	return ToQuestionEntity(&questionModel), nil
}

func (r *questionRepository) List() ([]*entity.Question, error) {
	var questionModels []model.QuestionModel
	err := r.db.Preload("Category").Preload("Answers").
		Order("asked_date DESC").Find(&questionModels).Error
	if err != nil {
		return nil, err
	}

	questions := make([]*entity.Question, len(questionModels))
	for i := range questionModels {
		questions[i] = ToQuestionEntity(&questionModels[i])
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(categoryName string) ([]*entity.Question, error) {
	var questionModels []model.QuestionModel
	err := r.db.Preload("Category").Preload("Answers").
		Joins("JOIN categories ON categories.id = questions.category_id").
		Where("LOWER(categories.name) = LOWER(?)", categoryName).
		Order("asked_date DESC").
		Find(&questionModels).Error
	if err != nil {
		return nil, err
	}

	questions := make([]*entity.Question, len(questionModels))
	for i := range questionModels {
		questions[i] = ToQuestionEntity(&questionModels[i])
	}
	return questions, nil
}

// Update overwrites the mutable fields only; asked_date and views keep their
// stored values, answers are managed through their own operations.
func (r *questionRepository) Update(question *entity.Question) error {
	result := r.db.Model(&model.QuestionModel{}).Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"title":       question.Title,
			"content":     question.Content,
			"author":      question.Author,
			"category_id": categoryIDModel(question.CategoryID),
			"tags":        joinTags(question.Tags),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the question together with its answers.
func (r *questionRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.AnswerModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.QuestionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *questionRepository) IncrementViews(id string) error {
	return r.db.Model(&model.QuestionModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *questionRepository) CreateAnswer(answer *entity.Answer) error {
	answerModel := ToAnswerModel(answer)
	if answerModel.ID == "" {
		answerModel.ID = uuid.New().String()
	}
	if err := r.db.Create(answerModel).Error; err != nil {
		return err
	}
	*answer = *ToAnswerEntity(answerModel)
	return nil
}

func (r *questionRepository) GetAnswerByID(id string) (*entity.Answer, error) {
	var answerModel model.AnswerModel
	if err := r.db.Where("id = ?", id).First(&answerModel).Error; err != nil {
		return nil, err
	}
	return ToAnswerEntity(&answerModel), nil
}

// AcceptAnswer marks the given answer as accepted after clearing the flag on
// every other answer of the question. The membership check and both updates
// run in one transaction so concurrent accepts cannot leave two answers
// flagged. An answer belonging to a different question is not-found.
func (r *questionRepository) AcceptAnswer(questionID, answerID string) (*entity.Answer, error) {
	var answerModel model.AnswerModel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND question_id = ?", answerID, questionID).
			First(&answerModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.AnswerModel{}).
			Where("question_id = ?", questionID).
			Update("is_accepted", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.AnswerModel{}).
			Where("id = ?", answerID).
			Update("is_accepted", true).Error; err != nil {
			return err
		}

		answerModel.IsAccepted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToAnswerEntity(&answerModel), nil
}
