package initializers

import (
	"context"

	"uni-payments-backend/config"
	"uni-payments-backend/fiberlog"
	authhandler "uni-payments-backend/lib/auth"
	departmentprovider "uni-payments-backend/lib/dicts/department"
	xlsexport "uni-payments-backend/lib/export/xls"
	"uni-payments-backend/lib/notify"
	"uni-payments-backend/lib/otp"
	paymentrequesthandler "uni-payments-backend/lib/payment-request"
	usershandler "uni-payments-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	InitS3(ctx)
	otp.NewHandler(config.Conf.Smtp.EmailFrom)
	notify.NewHandler(config.Conf.Smtp.EmailFrom)
	departmentprovider.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	paymentrequesthandler.NewHandler()
}
