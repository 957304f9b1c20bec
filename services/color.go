package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// ColorService is the bilingual color-reference CRUD module.
type ColorService struct {
	context.DefaultService

	sqlSvc    SqlService
	colorRepo *repositories.ColorRepository
}

const COLOR_SVC = "color_svc"

var defaultColors = []model.Color{
	{Eng: "Red", Sp: "Rojo"},
	{Eng: "Blue", Sp: "Azul"},
	{Eng: "Green", Sp: "Verde"},
	{Eng: "Yellow", Sp: "Amarillo"},
	{Eng: "Black", Sp: "Negro"},
	{Eng: "White", Sp: "Blanco"},
	{Eng: "Orange", Sp: "Naranja"},
	{Eng: "Purple", Sp: "Púrpura"},
	{Eng: "Pink", Sp: "Rosa"},
	{Eng: "Brown", Sp: "Marrón"},
	{Eng: "Gray", Sp: "Gris"},
	{Eng: "Cyan", Sp: "Cian"},
	{Eng: "Magenta", Sp: "Magenta"},
	{Eng: "Lime", Sp: "Lima"},
	{Eng: "Olive", Sp: "Oliva"},
	{Eng: "Maroon", Sp: "Granate"},
	{Eng: "Navy", Sp: "Azul Marino"},
	{Eng: "Teal", Sp: "Verde Azulado"},
	{Eng: "Silver", Sp: "Plateado"},
	{Eng: "Gold", Sp: "Dorado"},
}

func (svc ColorService) Id() string {
	return COLOR_SVC
}

func (svc *ColorService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ColorService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.colorRepo = repositories.NewColorRepository(svc.sqlSvc.Db())

	count, err := svc.colorRepo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		if err := svc.SeedDefaults(); err != nil {
			log.WithError(err).Error("Failed to seed color table")
			return err
		}
	}
	return nil
}

// SeedDefaults upserts the canonical color set; safe to run repeatedly.
func (svc *ColorService) SeedDefaults() error {
	colors := make([]model.Color, len(defaultColors))
	copy(colors, defaultColors)
	if err := svc.colorRepo.BulkUpsert(colors); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	log.WithField("count", len(colors)).Info("Color table seeded")
	return nil
}

func (svc *ColorService) List() ([]dto.ColorResponse, error) {
	colors, err := svc.colorRepo.List()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return mapColors(colors), nil
}

func (svc *ColorService) Get(id uint) (*dto.ColorResponse, error) {
	color, err := svc.colorRepo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("Color not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := mapColor(*color)
	return &resp, nil
}

func (svc *ColorService) Create(req dto.CreateColorRequest) (*dto.ColorResponse, error) {
	color := &model.Color{
		Eng:       req.Eng,
		Sp:        req.Sp,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := svc.colorRepo.Create(color); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := mapColor(*color)
	return &resp, nil
}

func (svc *ColorService) Update(id uint, req dto.UpdateColorRequest) (*dto.ColorResponse, error) {
	color := &model.Color{ID: id, Eng: req.Eng, Sp: req.Sp}
	affected, err := svc.colorRepo.Update(color)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if affected == 0 {
		return nil, shared.NewNotFoundError("Color not found")
	}
	return svc.Get(id)
}

func (svc *ColorService) Delete(id uint) error {
	affected, err := svc.colorRepo.Delete(id)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if affected == 0 {
		return shared.NewNotFoundError("Color not found")
	}
	return nil
}

// Search matches by partial English or Spanish name; eng wins when both are
// supplied.
func (svc *ColorService) Search(eng, sp string) ([]dto.ColorResponse, error) {
	var colors []model.Color
	var err error
	switch {
	case eng != "":
		colors, err = svc.colorRepo.SearchByEng(eng)
	case sp != "":
		colors, err = svc.colorRepo.SearchBySp(sp)
	default:
		colors, err = svc.colorRepo.List()
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return mapColors(colors), nil
}

func mapColor(c model.Color) dto.ColorResponse {
	return dto.ColorResponse{
		ID:        c.ID,
		Eng:       c.Eng,
		Sp:        c.Sp,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func mapColors(colors []model.Color) []dto.ColorResponse {
	out := make([]dto.ColorResponse, 0, len(colors))
	for _, c := range colors {
		out = append(out, mapColor(c))
	}
	return out
}
