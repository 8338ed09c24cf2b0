package repositories

import (
	"testing"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/database"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
	user *models.User
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, gofakeit.Email())
}

func (s *AccountRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) TestCreateAndGetByID() {
	account := &models.Account{
		UserID: s.user.ID,
		Name:   "Salary Account",
		Type:   models.AccountTypeSavings,
	}

	s.Require().NoError(s.repo.Create(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(account.Name, found.Name)
}

func (s *AccountRepositoryTestSuite) TestGetByID_NotFound() {
	account, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(account)
}

func (s *AccountRepositoryTestSuite) TestGetByUserID() {
	database.CreateTestAccount(s.T(), s.db, s.user, true)
	database.CreateTestAccount(s.T(), s.db, s.user, false)

	other := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	database.CreateTestAccount(s.T(), s.db, other, true)

	accounts, err := s.repo.GetByUserID(s.user.ID)

	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountRepositoryTestSuite) TestGetDefaultByUserID() {
	database.CreateTestAccount(s.T(), s.db, s.user, false)
	defaultAccount := database.CreateTestAccount(s.T(), s.db, s.user, true)

	found, err := s.repo.GetDefaultByUserID(s.user.ID)

	s.NoError(err)
	s.Equal(defaultAccount.ID, found.ID)
}

func (s *AccountRepositoryTestSuite) TestGetDefaultByUserID_NoDefault() {
	database.CreateTestAccount(s.T(), s.db, s.user, false)

	found, err := s.repo.GetDefaultByUserID(s.user.ID)

	s.ErrorIs(err, models.ErrNoDefaultAccount)
	s.Nil(found)
}
