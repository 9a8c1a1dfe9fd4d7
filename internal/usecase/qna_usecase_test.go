package usecase

import (
	"errors"
	"fmt"
	"testing"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/pkg/database"
	"dawah-portal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupQnAUseCase(t *testing.T) QnAUseCase {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewQnAUseCase(persistent.NewQuestionRepository(db), logger.New())
}

func TestQnAUseCase_GetCountsView(t *testing.T) {
	uc := setupQnAUseCase(t)

	question, err := uc.Create(&entity.Question{Title: "What is zakat?", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, 0, question.Views)

	// Each fetch counts, repeated fetches included.
	for want := 1; want <= 4; want++ {
		fetched, err := uc.Get(question.ID)
		require.NoError(t, err)
		assert.Equal(t, want, fetched.Views)
	}
}

func TestQnAUseCase_Get_NotFound(t *testing.T) {
	uc := setupQnAUseCase(t)

	_, err := uc.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQnAUseCase_AddAnswer_MissingQuestion(t *testing.T) {
	uc := setupQnAUseCase(t)

	_, err := uc.AddAnswer("missing", &entity.Answer{Content: "orphan"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQnAUseCase_AddAnswer_ServerAssignsFields(t *testing.T) {
	uc := setupQnAUseCase(t)

	question, err := uc.Create(&entity.Question{Title: "What is riba?", Content: "..."})
	require.NoError(t, err)

	// Client-supplied id, votes and accepted flag are ignored.
	answer, err := uc.AddAnswer(question.ID, &entity.Answer{
		ID:         "client-chosen",
		Content:    "Interest.",
		Author:     "Sheikh Omar",
		Votes:      99,
		IsAccepted: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", answer.ID)
	assert.Equal(t, question.ID, answer.QuestionID)
	assert.Equal(t, 0, answer.Votes)
	assert.False(t, answer.IsAccepted)
	assert.False(t, answer.AnsweredDate.IsZero())
}

func TestQnAUseCase_AcceptAnswer_WrongQuestionNotFound(t *testing.T) {
	uc := setupQnAUseCase(t)

	question, err := uc.Create(&entity.Question{Title: "Is music permissible?", Content: "..."})
	require.NoError(t, err)
	other, err := uc.Create(&entity.Question{Title: "How to perform wudu?", Content: "..."})
	require.NoError(t, err)

	answer, err := uc.AddAnswer(question.ID, &entity.Answer{Content: "It depends."})
	require.NoError(t, err)

	_, err = uc.AcceptAnswer(other.ID, answer.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQnAUseCase_CreateStripsAnswers(t *testing.T) {
	uc := setupQnAUseCase(t)

	question, err := uc.Create(&entity.Question{
		Title:   "What breaks the fast?",
		Content: "...",
		Answers: []entity.Answer{{Content: "smuggled in"}},
	})
	require.NoError(t, err)

	stored, err := uc.Get(question.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Answers)
}
