package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"uni-payments-backend/config"
	"uni-payments-backend/models"
)

func initTestConf() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 86400
}

func TestToken(t *testing.T) {
	initTestConf()

	t.Run(`roundtrip check`, func(t *testing.T) {
		tokenString, err := GetToken("user-1", "John Doe", "staff@uni.example", "dep-eie", models.UserRoleStaff)
		require.Nil(t, err)
		require.NotEmpty(t, tokenString)

		claims, err := ParseToken(tokenString)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "staff@uni.example", claims["email"])
		require.Equal(t, "dep-eie", claims["department"])
		require.Equal(t, string(models.UserRoleStaff), claims["role"])
	})

	t.Run(`refresh token check`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-1", "John Doe")
		require.Nil(t, err)

		claims, err := ParseToken(tokenString)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Nil(t, claims["email"])
	})

	t.Run(`tampered token check`, func(t *testing.T) {
		tokenString, err := GetToken("user-1", "John Doe", "staff@uni.example", "dep-eie", models.UserRoleStaff)
		require.Nil(t, err)
		_, err = ParseToken(tokenString + "x")
		require.NotNil(t, err)
	})
}

func TestGetMD5Hash(t *testing.T) {
	t.Run(`hash check`, func(t *testing.T) {
		require.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", GetMD5Hash("password"))
		require.NotEqual(t, GetMD5Hash("a"), GetMD5Hash("b"))
	})
}
