package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"support-it/internal/dto"
	"support-it/internal/entities"
	"support-it/pkg/constants"
	apperrors "support-it/pkg/errors"
)

// RequestScope restreint un listing. Les champs sont exclusifs : OwnerID pour
// la vue d'un demandeur, AssignedTo / OnlyUnassigned pour les vues IT.
type RequestScope struct {
	OwnerID        *uuid.UUID
	AssignedTo     *uuid.UUID
	OnlyUnassigned bool
}

type RequestRepositoryInterface interface {
	CreateRequest(ctx context.Context, creatorID uuid.UUID, payload dto.CreateRequestDTO) (uuid.UUID, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*entities.Request, error)
	FindRequestDetail(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error)
	ListRequests(ctx context.Context, scope RequestScope) ([]dto.RequestDTO, error)
	TakeRequest(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error)
	CloseRequest(ctx context.Context, id uuid.UUID) (bool, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *RequestRepository) CreateRequest(ctx context.Context, creatorID uuid.UUID, payload dto.CreateRequestDTO) (uuid.UUID, error) {
	query := `
		INSERT INTO requests (user_id, type, category, title, description, location, priority, service_demandeur)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	category := null.NewString(payload.Category, payload.Category != "")

	var newID uuid.UUID
	err := r.storage.QueryRow(ctx, query,
		creatorID, payload.Type, category, payload.Title,
		payload.Description, payload.Location, payload.Priority, payload.ServiceDemandeur,
	).Scan(&newID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("erreur de création de la demande : %w", err)
	}
	return newID, nil
}

// FindRequest lit la ligne brute, sans jointure.
func (r *RequestRepository) FindRequest(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	query := `
		SELECT id, user_id, type, category, title, description, location,
		       priority, service_demandeur, status, assigned_to, created_at, closed_at
		FROM requests
		WHERE id = $1`

	var req entities.Request
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.Type, &req.Category, &req.Title,
		&req.Description, &req.Location, &req.Priority, &req.ServiceDemandeur,
		&req.Status, &req.AssignedTo, &req.CreatedAt, &req.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erreur de lecture de la demande : %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) FindRequestDetail(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error) {
	builder := r.selectDetail().Where(sq.Eq{"req.id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur de construction de la requête SQL : %w", err)
	}

	row := r.storage.QueryRow(ctx, query, args...)
	item, err := scanRequestRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *RequestRepository) ListRequests(ctx context.Context, scope RequestScope) ([]dto.RequestDTO, error) {
	builder := r.selectDetail()

	switch {
	case scope.OwnerID != nil:
		builder = builder.Where(sq.Eq{"req.user_id": *scope.OwnerID})
	case scope.AssignedTo != nil:
		builder = builder.Where(sq.Eq{"req.assigned_to": *scope.AssignedTo})
	case scope.OnlyUnassigned:
		builder = builder.Where(sq.Eq{"req.assigned_to": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur de construction de la requête SQL : %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erreur de lecture des demandes : %w", err)
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		item, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *item)
	}
	return requests, rows.Err()
}

// TakeRequest réalise la prise en charge par une unique mise à jour
// conditionnelle : l'affectation ne part que si la demande est encore ouverte
// et non assignée au moment de l'écriture. Sous accès concurrents, une seule
// des N tentatives voit RowsAffected = 1 ; les autres reçoivent false, ce qui
// n'est pas une erreur.
func (r *RequestRepository) TakeRequest(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error) {
	tag, err := r.storage.Exec(ctx, `
		UPDATE requests
		SET assigned_to = $2, status = $3
		WHERE id = $1 AND status = $4 AND assigned_to IS NULL`,
		id, actorID, constants.StatusEnCours, constants.StatusOuvert)
	if err != nil {
		return false, fmt.Errorf("erreur lors de la prise en charge : %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CloseRequest passe en_cours -> termine par mise à jour conditionnelle ;
// false signale que la demande n'était plus (ou pas encore) en cours.
func (r *RequestRepository) CloseRequest(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.storage.Exec(ctx, `
		UPDATE requests
		SET status = $2, closed_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, constants.StatusTermine, constants.StatusEnCours)
	if err != nil {
		return false, fmt.Errorf("erreur lors de la clôture : %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepository) selectDetail() sq.SelectBuilder {
	return psql.
		Select(
			"req.id", "req.type", "req.category", "req.title", "req.description",
			"req.location", "req.priority", "req.service_demandeur", "req.status",
			"req.created_at", "req.closed_at",
			"demandeur.id", "demandeur.email", "demandeur.service",
			"assigne.id", "assigne.email", "assigne.service",
		).
		From("requests req").
		Join("profiles demandeur ON req.user_id = demandeur.id").
		LeftJoin("profiles assigne ON req.assigned_to = assigne.id").
		OrderBy("req.created_at DESC")
}

func scanRequestRow(row pgx.Row) (*dto.RequestDTO, error) {
	var item dto.RequestDTO
	var assigneID uuid.NullUUID
	var assigneEmail, assigneService null.String

	err := row.Scan(
		&item.ID, &item.Type, &item.Category, &item.Title, &item.Description,
		&item.Location, &item.Priority, &item.ServiceDemandeur, &item.Status,
		&item.CreatedAt, &item.ClosedAt,
		&item.Demandeur.ID, &item.Demandeur.Email, &item.Demandeur.Service,
		&assigneID, &assigneEmail, &assigneService,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("erreur de lecture d'une ligne de demande : %w", err)
	}

	if assigneID.Valid {
		item.Assigne = &dto.ShortProfileDTO{
			ID:      assigneID.UUID,
			Email:   assigneEmail.String,
			Service: assigneService.String,
		}
	}
	return &item, nil
}
