package service

import (
	"context"
	"fmt"

	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/rs/zerolog/log"
)

type ScheduleService interface {
	// List returns the items of date, or of today when date is nil.
	List(ctx context.Context, userID uint, date *model.Date) ([]dto.ScheduleItemResponse, error)
	Today(ctx context.Context, userID uint) ([]dto.ScheduleItemResponse, error)
	Get(ctx context.Context, userID, id uint) (*dto.ScheduleItemResponse, error)
	Create(ctx context.Context, userID uint, in dto.ScheduleItemInput) (*dto.ScheduleItemResponse, error)
	Update(ctx context.Context, userID, id uint, in dto.ScheduleItemInput) (*dto.ScheduleItemResponse, error)
	Delete(ctx context.Context, userID, id uint) error
	MarkCompleted(ctx context.Context, userID, id uint) (*dto.ScheduleItemResponse, error)
}

type scheduleService struct {
	repo  repository.ScheduleRepository
	clock Clock
}

func NewScheduleService(repo repository.ScheduleRepository, clock Clock) ScheduleService {
	return &scheduleService{repo: repo, clock: clock}
}

func (s *scheduleService) List(ctx context.Context, userID uint, date *model.Date) ([]dto.ScheduleItemResponse, error) {
	day := today(s.clock)
	if date != nil {
		day = *date
	}
	items, err := s.repo.FindByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}
	return toResponses[dto.ScheduleItemResponse](items)
}

func (s *scheduleService) Today(ctx context.Context, userID uint) ([]dto.ScheduleItemResponse, error) {
	return s.List(ctx, userID, nil)
}

func (s *scheduleService) Get(ctx context.Context, userID, id uint) (*dto.ScheduleItemResponse, error) {
	item, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "schedule item", id)
	}
	return s.respond(item)
}

func (s *scheduleService) Create(ctx context.Context, userID uint, in dto.ScheduleItemInput) (*dto.ScheduleItemResponse, error) {
	item := model.ScheduleItem{UserID: &userID, Status: model.StatusUpcoming, Date: today(s.clock)}
	if err := applyScheduleInput(&item, in); err != nil {
		return nil, err
	}
	if err := requireFields(
		field("subject", item.Subject == ""),
		field("start_time", item.StartTime == ""),
		field("end_time", item.EndTime == ""),
	); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		log.Error().Err(err).Msg("Failed to create schedule item")
		return nil, fmt.Errorf("failed to create schedule item: %w", err)
	}
	return s.respond(&item)
}

func (s *scheduleService) Update(ctx context.Context, userID, id uint, in dto.ScheduleItemInput) (*dto.ScheduleItemResponse, error) {
	item, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, lookupErr(err, "schedule item", id)
	}
	if err := applyScheduleInput(item, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update schedule item %d: %w", id, err)
	}
	return s.respond(item)
}

func (s *scheduleService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return lookupErr(err, "schedule item", id)
	}
	return nil
}

func (s *scheduleService) MarkCompleted(ctx context.Context, userID, id uint) (*dto.ScheduleItemResponse, error) {
	status := model.StatusCompleted
	return s.Update(ctx, userID, id, dto.ScheduleItemInput{Status: &status})
}

func (s *scheduleService) respond(item *model.ScheduleItem) (*dto.ScheduleItemResponse, error) {
	resp, err := toResponse[dto.ScheduleItemResponse](item)
	return &resp, err
}

func applyScheduleInput(item *model.ScheduleItem, in dto.ScheduleItemInput) error {
	setString(&item.Subject, in.Subject)
	setString(&item.Status, in.Status)
	if err := setTimeOfDay(&item.StartTime, "start_time", in.StartTime); err != nil {
		return err
	}
	if err := setTimeOfDay(&item.EndTime, "end_time", in.EndTime); err != nil {
		return err
	}
	return setDate(&item.Date, "date", in.Date)
}
