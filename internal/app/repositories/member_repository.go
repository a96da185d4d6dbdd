package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/memberapi/internal/app/models"
	"github.com/yigit/memberapi/internal/pkg/apperrors"
	"github.com/yigit/memberapi/internal/pkg/dberrors"
	"github.com/yigit/memberapi/internal/pkg/helpers"
)

// ErrMemberNotFound is returned by FindByID when no row has the identifier.
var ErrMemberNotFound = apperrors.ErrMemberNotFound

const membersTable = "members"

// memberColumns is the select list shared by every member query. Order must
// match the destinations in scanMember.
var memberColumns = []string{
	"member_id",
	"stu_no",
	"enter_year",
	"name",
	"birth_md",
	"sust_cd",
	"mjr_cd",
	"shys_cd",
	"shtm_cd",
	"fin_schreg_div_cd",
	"cptn_shtm_cnt",
	"email",
	"gender",
	"city",
	"street",
	"zipcode",
}

// DBTX is the subset of *pgxpool.Pool the repositories need.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// MemberRepository reads members from PostgreSQL. It exposes no writes.
type MemberRepository struct {
	db           DBTX
	sb           squirrel.StatementBuilderType
	queryTimeout time.Duration
	logger       zerolog.Logger
}

// NewMemberRepository creates a new MemberRepository. A zero queryTimeout
// leaves the caller's deadline untouched.
func NewMemberRepository(db DBTX, queryTimeout time.Duration, lgr zerolog.Logger) *MemberRepository {
	return &MemberRepository{
		db:           db,
		sb:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		queryTimeout: queryTimeout,
		logger:       lgr.With().Str("repository", "members").Logger(),
	}
}

func (r *MemberRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func (r *MemberRepository) selectAllSQL() (string, []interface{}, error) {
	return r.sb.Select(memberColumns...).
		From(membersTable).
		OrderBy("member_id ASC").
		ToSql()
}

func (r *MemberRepository) selectByIDSQL(id int64) (string, []interface{}, error) {
	return r.sb.Select(memberColumns...).
		From(membersTable).
		Where(squirrel.Eq{"member_id": id}).
		Limit(1).
		ToSql()
}

// FindAll returns every stored member, ordered by identifier.
func (r *MemberRepository) FindAll(ctx context.Context) ([]*models.Member, error) {
	sql, args, err := r.selectAllSQL()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building find all members SQL")
		return nil, fmt.Errorf("failed to build find all members query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error executing find all members query")
		return nil, classify(fmt.Errorf("error querying members: %w", err))
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("Error scanning member row during find all")
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("Error iterating member rows")
		return nil, classify(fmt.Errorf("error iterating member rows: %w", err))
	}

	return members, nil
}

// FindByID returns the member with the identifier, or ErrMemberNotFound.
func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	sql, args, err := r.selectByIDSQL(id)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building find member by ID SQL")
		return nil, fmt.Errorf("failed to build find member query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, ErrMemberNotFound
		}
		r.logger.Error().Err(err).Int64("memberID", id).Msg("Error scanning member row")
		return nil, classify(fmt.Errorf("error getting member by ID: %w", err))
	}

	return member, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanMember reads one row in memberColumns order. Text columns are nullable
// in the schema; NULL reads as "" except for the address columns, whose
// NULL-ness decides whether the member has an address at all.
func scanMember(row rowScanner) (*models.Member, error) {
	var (
		id                                     int64
		stuNo, enterYear, name, birthMd        *string
		sustCd, mjrCd, shysCd, shtmCd, finStat *string
		cptnShtmCnt                            *int32
		email                                  *string
		gender                                 string
		city, street, zipcode                  *string
	)

	if err := row.Scan(
		&id, &stuNo, &enterYear, &name, &birthMd,
		&sustCd, &mjrCd, &shysCd, &shtmCd, &finStat,
		&cptnShtmCnt, &email, &gender,
		&city, &street, &zipcode,
	); err != nil {
		return nil, err
	}

	g, err := models.ParseGender(gender)
	if err != nil {
		return nil, fmt.Errorf("member %d: %w", id, err)
	}

	return models.NewMemberBuilder().
		ID(id).
		StuNo(helpers.StringValue(stuNo)).
		EnterYear(helpers.StringValue(enterYear)).
		Name(helpers.StringValue(name)).
		BirthMd(helpers.StringValue(birthMd)).
		SustCd(helpers.StringValue(sustCd)).
		MjrCd(helpers.StringValue(mjrCd)).
		ShysCd(helpers.StringValue(shysCd)).
		ShtmCd(helpers.StringValue(shtmCd)).
		FinSchregDivCd(helpers.StringValue(finStat)).
		CptnShtmCnt(helpers.Int32Ptr(cptnShtmCnt)).
		Email(helpers.StringValue(email)).
		Gender(g).
		Address(models.NewAddress(city, street, zipcode)).
		Build()
}

// classify tags connection-level failures so the HTTP layer can tell an
// unreachable database from a failed query.
func classify(err error) error {
	if dberrors.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrDatabaseUnavailable, err)
	}
	return err
}
