package models_test

import (
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{
		Email: "  Jane.Doe@Example.COM ",
		Name:  " Jane Doe ",
	})

	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
	assert.Equal(suite.T(), "Jane Doe", user.Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "taken@example.com"})

	err := models.DB.Create(&models.User{Email: "Taken@example.com"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}
