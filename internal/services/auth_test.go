package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/secondchance-backend/internal/models"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	userID := primitive.NewObjectID()

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(userID.Hex(), nil)
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID.Hex()).
					Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:      "missing email",
			email:     "",
			password:  "pass123",
			mockSetup: func() {},
			wantErr:   services.ErrMissingCredentials,
		},
		{
			name:      "missing password",
			email:     "alice@example.com",
			password:  "",
			mockSetup: func() {},
			wantErr:   services.ErrMissingCredentials,
		},
		{
			name:     "user already exists",
			email:    "bob@example.com",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(&models.UserDB{ID: userID, Email: "bob@example.com"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "reader error",
			email:    "eve@example.com",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "eve@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "writer error",
			email:    "carol@example.com",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "carol@example.com").
					Return(nil, nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return("", errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
		{
			name:     "insert yields no id",
			email:    "dave@example.com",
			password: "pass123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "dave@example.com").
					Return(nil, nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return("", nil)
			},
			wantErr: services.ErrUserNotCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, err := svc.Register(context.Background(), tt.email, tt.password, "First", "Last")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Register_NeverStoresRawPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.UserDB) (string, error) {
			assert.NotEqual(t, "pass123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
			return primitive.NewObjectID().Hex(), nil
		})
	mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token", nil)

	_, err := svc.Register(context.Background(), "alice@example.com", "pass123", "", "")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := primitive.NewObjectID()
	user := &models.UserDB{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed), FirstName: "Alice"}

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func()
		wantToken     string
		wantFirstName string
		wantErr       error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(user, nil)
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID.Hex()).
					Return("token123", nil)
			},
			wantToken:     "token123",
			wantFirstName: "Alice",
		},
		{
			name:      "missing credentials",
			email:     "alice@example.com",
			password:  "",
			mockSetup: func() {},
			wantErr:   services.ErrMissingCredentials,
		},
		{
			name:     "user does not exist",
			email:    "ghost@example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "not-the-password",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(user, nil)
			},
			wantErr: services.ErrWrongPassword,
		},
		{
			name:     "reader error",
			email:    "alice@example.com",
			password: password,
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, firstName, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantFirstName, firstName)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	userID := primitive.NewObjectID()
	user := &models.UserDB{ID: userID, Email: "alice@example.com", FirstName: "Alice"}

	tests := []struct {
		name      string
		email     string
		newName   string
		mockSetup func()
		wantToken string
		wantErr   error
	}{
		{
			name:    "successful update",
			email:   "alice@example.com",
			newName: "Alicia",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(user, nil)
				mockWriter.EXPECT().
					SetFirstName(gomock.Any(), "alice@example.com", "Alicia", gomock.Any()).
					Return(&models.UserDB{ID: userID, Email: "alice@example.com", FirstName: "Alicia", UpdatedAt: time.Now()}, nil)
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID.Hex()).
					Return("token456", nil)
			},
			wantToken: "token456",
		},
		{
			name:      "blank name",
			email:     "alice@example.com",
			newName:   "   ",
			mockSetup: func() {},
			wantErr:   services.ErrInvalidName,
		},
		{
			name:      "missing email",
			email:     "",
			newName:   "Alicia",
			mockSetup: func() {},
			wantErr:   services.ErrMissingEmail,
		},
		{
			name:    "user does not exist",
			email:   "ghost@example.com",
			newName: "Alicia",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, err := svc.UpdateProfile(context.Background(), tt.email, tt.newName)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestBcrypt_HashRoundTrip(t *testing.T) {
	passwords := []string{"p1", "correct horse battery staple", ""}

	for _, password := range passwords {
		h1, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		assert.NoError(t, err)
		h2, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		assert.NoError(t, err)

		// Fresh salt per call: hashes differ, both verify.
		assert.NotEqual(t, string(h1), string(h2))
		assert.NoError(t, bcrypt.CompareHashAndPassword(h1, []byte(password)))
		assert.NoError(t, bcrypt.CompareHashAndPassword(h2, []byte(password)))

		// Verification against a hash of a different password fails.
		other, _ := bcrypt.GenerateFromPassword([]byte(password+"-other"), bcrypt.DefaultCost)
		assert.Error(t, bcrypt.CompareHashAndPassword(other, []byte(password)))
	}
}
