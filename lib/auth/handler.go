package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"uni-payments-backend/db"
	"uni-payments-backend/lib/otp"
	usersstore "uni-payments-backend/lib/users/store"
	authutils "uni-payments-backend/lib/utils/auth-utils"
	initchecker "uni-payments-backend/lib/utils/init-checker"
	"uni-payments-backend/models"
	authapimodels "uni-payments-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginData) (authapimodels.TokenPairView, error)
	Refresh(data authapimodels.RefreshData) (authapimodels.TokenPairView, error)
	SendOtp(email string, data authapimodels.OtpRequestData) error
	VerifyLoginOtp(email string, data authapimodels.OtpVerifyData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (authapimodels.TokenPairView, error) {
	logger := log.WithField("email", data.Email)
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		return authapimodels.TokenPairView{}, models.NewPersistenceError(err, "user lookup error")
	}
	if user == nil || !user.IsActive {
		return authapimodels.TokenPairView{}, models.NewAuthorizationError("invalid email or password")
	}
	if authutils.GetMD5Hash(data.Password) != user.Password {
		return authapimodels.TokenPairView{}, models.NewAuthorizationError("invalid email or password")
	}
	pair, err := i.tokenPair(user.ID, user.GetFullName(), user.Email, user.DepartmentID, user.Role)
	if err != nil {
		return authapimodels.TokenPairView{}, err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{
		"last_login": time.Now(),
	})
	if err != nil {
		logger.WithError(err).Error("last login update error")
	}
	logger.Info("user logged in")
	return pair, nil
}

func (i impl) Refresh(data authapimodels.RefreshData) (authapimodels.TokenPairView, error) {
	claims, err := authutils.ParseToken(data.RefreshToken)
	if err != nil {
		return authapimodels.TokenPairView{}, models.NewAuthorizationError("invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return authapimodels.TokenPairView{}, models.NewAuthorizationError("invalid refresh token")
	}
	user, err := i.usersStore.GetByID(sub)
	if err != nil {
		return authapimodels.TokenPairView{}, models.NewPersistenceError(err, "user lookup error")
	}
	if user == nil || !user.IsActive {
		return authapimodels.TokenPairView{}, models.NewAuthorizationError("user is not active")
	}
	return i.tokenPair(user.ID, user.GetFullName(), user.Email, user.DepartmentID, user.Role)
}

func (i impl) SendOtp(email string, data authapimodels.OtpRequestData) error {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return models.NewPersistenceError(err, "user lookup error")
	}
	if user == nil || !user.IsActive {
		return models.NewAuthorizationError("user is not active")
	}
	return otp.Instance.Send(email, data.Purpose, data.RequestID)
}

func (i impl) VerifyLoginOtp(email string, data authapimodels.OtpVerifyData) error {
	err := otp.Instance.Consume(nil, email, models.OtpPurposeLogin, "", data.Code)
	if err != nil {
		return err
	}
	err = i.usersStore.UpdateByEmail(email, map[string]interface{}{
		"otp_verified": true,
	})
	if err != nil {
		return models.NewPersistenceError(err, "user update error")
	}
	log.WithField("email", email).Info("login verified")
	return nil
}

func (i impl) tokenPair(userID, name, email, departmentID string, role models.UserRole) (authapimodels.TokenPairView, error) {
	accessToken, err := authutils.GetToken(userID, name, email, departmentID, role)
	if err != nil {
		return authapimodels.TokenPairView{}, models.NewPersistenceError(err, "token issue error")
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.TokenPairView{}, models.NewPersistenceError(err, "token issue error")
	}
	return authapimodels.TokenPairView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
