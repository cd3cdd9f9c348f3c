package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mesaayuda/internal/domain/ticket"
	"mesaayuda/internal/infrastructure/persistence/mappers"
	"mesaayuda/internal/infrastructure/persistence/models"
	"mesaayuda/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.TicketRepository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	return nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	// Select forces the nullable agent_name through even when nil clears it.
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("Status", "AgentName", "Solution", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, ticketID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepositoryImpl) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket model to entity: %w", err)
	}

	return entity, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})
	query = applyTicketFilter(query, filter)

	if filter.SortAscending() {
		query = query.Order("created_at ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	var rows []models.TicketModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket model to entity: %w", err)
		}
		tickets = append(tickets, entity)
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketRepositoryImpl) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets created since %s: %w", since, err)
	}
	return count, nil
}

// applyTicketFilter translates the domain filter into WHERE clauses.
// Filter categories AND together; the search term ORs an exact ID match
// (when it parses as a positive integer after stripping leading zeros)
// with case-insensitive substring matches on caller name, subject and
// agent name.
func applyTicketFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if id, ok := filter.SearchID(); ok {
			query = query.Where(
				"id = ? OR LOWER(caller_name) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?) OR LOWER(agent_name) LIKE LOWER(?)",
				id, pattern, pattern, pattern,
			)
		} else {
			query = query.Where(
				"LOWER(caller_name) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?) OR LOWER(agent_name) LIKE LOWER(?)",
				pattern, pattern, pattern,
			)
		}
	}

	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", filter.DateFrom.UnixMilli())
	}

	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", filter.DateTo.UnixMilli())
	}

	return query
}
