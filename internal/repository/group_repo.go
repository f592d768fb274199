package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

type GroupRepository interface {
	// GetGroupsByInstructorID lists simulation groups the user instructs,
	// ordered by (group_name, simulation_group_id).
	GetGroupsByInstructorID(ctx context.Context, userID string) ([]model.SimulationGroup, error)
}

type groupRepo struct {
	db *sql.DB
}

func NewGroupRepo(db *sql.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) GetGroupsByInstructorID(ctx context.Context, userID string) ([]model.SimulationGroup, error) {
	query := `
		SELECT g.simulation_group_id, g.group_name, g.group_description
		FROM enrolments e
		JOIN simulation_groups g ON e.simulation_group_id = g.simulation_group_id
		WHERE e.user_id = $1
		AND e.enrolment_type = 'instructor'
		ORDER BY g.group_name, g.simulation_group_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query instructor groups: %w", err)
	}
	defer rows.Close()

	groups := []model.SimulationGroup{}
	for rows.Next() {
		var g model.SimulationGroup
		if err := rows.Scan(&g.SimulationGroupID, &g.GroupName, &g.GroupDescription); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
