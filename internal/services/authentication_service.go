package services

import (
	"log"
	"strings"
	"time"

	"collabBoard/configs"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/repositories"
	"collabBoard/internal/utils"
	"collabBoard/internal/validators"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Username) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, err := as.authRepo.Login(loginData)
	if err != nil {
		errors = append(errors, err...)
		return nil, errors
	}

	jwtExpiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Username,
		user.Email,
		user.IsStaff,
		utils.GetJwtKey(),
		jwtExpiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  *user,
		Token: token,
	}, nil
}

func (as *AuthenticationService) CheckIfUserExists(username string) bool {
	return as.authRepo.CheckIfUserExists(username) != nil
}

func (as *AuthenticationService) FindByUsername(username string) (*models.User, error) {
	return as.authRepo.FindByUsername(username)
}

func (as *AuthenticationService) GetSingleUser(userId uint) (*models.UserResponse, []error) {
	var errors []error
	user, err := as.authRepo.GetSingleUser(userId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user, nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	if page < 0 || size < 0 {
		log.Println("Page or size < 0")
		errors = append(errors, errs.ErrInvalidPageOrSize)
		return nil, errors
	}
	return as.authRepo.GetAllUsersWithPagination(page, size)
}

// SearchUsers needs at least two characters after trimming whitespace;
// shorter queries return an empty result instead of an error.
func (as *AuthenticationService) SearchUsers(query string, requesterId uint) ([]models.UserResponse, []error) {
	var errors []error
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.UserResponse{}, nil
	}
	users, err := as.authRepo.SearchUsers(query, requesterId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return users, nil
}
