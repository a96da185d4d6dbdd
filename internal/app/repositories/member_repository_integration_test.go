package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yigit/memberapi/internal/app/models"
	"github.com/yigit/memberapi/internal/db"
)

// Integration tests run against a real PostgreSQL started with testcontainers-go.
// They are skipped unless GO_TEST_INTEGRATION is set:
//
//	GO_TEST_INTEGRATION=1 go test ./internal/app/repositories -run Integration -v -count=1

func repoRootFromThisFile() string {
	// internal/app/repositories -> repository root
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := db.NewMigrator(pool, zerolog.Nop()).
		MigrateFromDirectory(ctx, filepath.Join(repoRootFromThisFile(), "migrations"))
	require.NoError(t, err)
	require.Positive(t, applied)

	return pool
}

// insertMember writes a row directly, bypassing the application.
func insertMember(t *testing.T, pool *pgxpool.Pool, stuNo, name, gender string, city, street, zipcode *string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO members (stu_no, enter_year, name, birth_md, sust_cd, mjr_cd, shys_cd, shtm_cd,
			fin_schreg_div_cd, cptn_shtm_cnt, email, gender, city, street, zipcode)
		VALUES ($1, '2021', $2, '910109', 'SUSTCD001', 'MJRCD002', '1', '1',
			'FinSchregDivCd001', 1, 'devopsTest@naver.com', $3, $4, $5, $6)
		RETURNING member_id`,
		stuNo, name, gender, city, street, zipcode).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestIntegration_FindAll_RoundTrip(t *testing.T) {
	pool := startPostgres(t)
	repo := NewMemberRepository(pool, 5*time.Second, zerolog.Nop())

	first := insertMember(t, pool, "20218775", "Lee", "MAN", strPtr("Seoul"), strPtr("Main St"), strPtr("111"))
	second := insertMember(t, pool, "20218776", "Kim", "WOMAN", nil, nil, nil)

	members, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	require.Equal(t, first, members[0].ID())
	require.Equal(t, "20218775", members[0].StuNo())
	require.Equal(t, "2021", members[0].EnterYear())
	require.Equal(t, "Lee", members[0].Name())
	require.Equal(t, "910109", members[0].BirthMd())
	require.Equal(t, "FinSchregDivCd001", members[0].FinSchregDivCd())
	require.Equal(t, 1, *members[0].CptnShtmCnt())
	require.Equal(t, models.GenderMan, members[0].Gender())
	require.Equal(t, &models.Address{City: "Seoul", Street: "Main St", Zipcode: "111"}, members[0].Address())

	require.Equal(t, second, members[1].ID())
	require.Equal(t, models.GenderWoman, members[1].Gender())
	require.Nil(t, members[1].Address())
}

func TestIntegration_FindByID(t *testing.T) {
	pool := startPostgres(t)
	repo := NewMemberRepository(pool, 5*time.Second, zerolog.Nop())

	id := insertMember(t, pool, "20218775", "Lee", "MAN", nil, strPtr("Main St"), nil)

	member, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Lee", member.Name())
	require.Equal(t, &models.Address{Street: "Main St"}, member.Address())

	_, err = repo.FindByID(context.Background(), id+100)
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestIntegration_MigrationsAreIdempotent(t *testing.T) {
	pool := startPostgres(t)

	applied, err := db.NewMigrator(pool, zerolog.Nop()).
		MigrateFromDirectory(context.Background(), filepath.Join(repoRootFromThisFile(), "migrations"))
	require.NoError(t, err)
	require.Zero(t, applied)
}

func TestIntegration_GenderConstraint(t *testing.T) {
	pool := startPostgres(t)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (name, gender) VALUES ('X', 'OTHER')`)
	require.Error(t, err)
}

func TestIntegration_ExpiredContext(t *testing.T) {
	pool := startPostgres(t)
	repo := NewMemberRepository(pool, 5*time.Second, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
}
