package services

import (
	"os"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// AdminService backs the operator console: raw table browsing, the SQL
// console and generic row mutations, all behind a bearer token. The operator
// credential lives in the environment as a bcrypt hash, unlike player
// credentials which the game stores verbatim.
type AdminService struct {
	context.DefaultService

	sqlSvc SqlService
	jwtSvc *JWTService

	adminRepo *repositories.AdminRepository

	operatorUsername string
	operatorHash     string
}

const ADMIN_SVC = "admin_svc"

func (svc AdminService) Id() string {
	return ADMIN_SVC
}

func (svc *AdminService) Configure(ctx *context.Context) error {
	svc.operatorUsername = os.Getenv("ADMIN_USERNAME")
	if svc.operatorUsername == "" {
		svc.operatorUsername = "operator"
	}
	svc.operatorHash = os.Getenv("ADMIN_PASSWORD_HASH")
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.adminRepo = repositories.NewAdminRepository(svc.sqlSvc.Db())

	if svc.operatorHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set; operator login disabled")
	}
	return nil
}

func (svc *AdminService) Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if svc.operatorHash == "" || req.Username != svc.operatorUsername {
		return nil, shared.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(svc.operatorHash), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError("Invalid credentials")
	}

	token, err := svc.jwtSvc.ToJWT(req.Username)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	log.WithField("username", req.Username).Info("Operator logged in")

	return &dto.AdminLoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(svc.jwtSvc.TokenDuration.Seconds()),
	}, nil
}

func (svc *AdminService) ListTables() ([]dto.TableInfo, error) {
	tables, err := svc.adminRepo.ListTables()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tables, nil
}

func (svc *AdminService) BrowseTable(table string, limit int) (*dto.TableData, error) {
	data, err := svc.adminRepo.BrowseTable(table, limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return data, nil
}

func (svc *AdminService) ExecSQL(req dto.SQLRequest) (*dto.SQLResult, error) {
	result, err := svc.adminRepo.ExecSQL(req.SQL)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"type": result.Type,
	}).Info("Operator SQL executed")
	return result, nil
}

func (svc *AdminService) InsertRow(req dto.InsertRowRequest) (*dto.MutationResult, error) {
	affected, err := svc.adminRepo.InsertRow(req.Table, req.Data)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return &dto.MutationResult{Success: true, RowsAffected: affected}, nil
}

func (svc *AdminService) UpdateRow(req dto.UpdateRowRequest) (*dto.MutationResult, error) {
	affected, err := svc.adminRepo.UpdateRow(req.Table, req.IDColumn, req.ID, req.Data)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return &dto.MutationResult{Success: true, RowsAffected: affected}, nil
}

func (svc *AdminService) DeleteRow(req dto.DeleteRowRequest) (*dto.MutationResult, error) {
	affected, err := svc.adminRepo.DeleteRow(req.Table, req.IDColumn, req.ID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return &dto.MutationResult{Success: true, RowsAffected: affected}, nil
}
