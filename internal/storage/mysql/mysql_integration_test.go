//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"booking_api/internal/domain"
	mysqlrepo "booking_api/internal/storage/mysql"
)

func pstr(s string) *string { return &s }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=booking",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "booking")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_HotelsAndReservations(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// create then fetch yields identical fields
	grand, err := repo.CreateHotel(ctx, "Grand Hotel", "Berlin")
	if err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}
	got, err := repo.GetHotel(ctx, grand.ID)
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if got != grand {
		t.Fatalf("got %+v want %+v", got, grand)
	}

	budget, err := repo.CreateHotel(ctx, "Budget Inn", "Lake City")
	if err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}
	seaside, err := repo.CreateHotel(ctx, "Seaside Resort", "Coast")
	if err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}

	// search ORs terms over both fields, case-insensitively
	hits, err := repo.SearchHotels(ctx, []string{"grand", "lake"})
	if err != nil {
		t.Fatalf("SearchHotels: %v", err)
	}
	found := map[string]bool{}
	for _, h := range hits {
		found[h.ID] = true
	}
	if !found[grand.ID] || !found[budget.ID] || found[seaside.ID] {
		t.Fatalf("unexpected search hits: %+v", hits)
	}

	// reservations, owner-scoped
	from := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	res, err := repo.CreateReservation(ctx, grand.ID, "alice", from, to, pstr("sea view please"))
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if res.Hotel != grand || res.UserID != "alice" {
		t.Fatalf("unexpected reservation: %+v", res)
	}

	if _, err := repo.GetReservation(ctx, grand.ID, res.ID, "bob"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("bob's get: want ErrNotFound, got %v", err)
	}
	if n, _ := repo.DeleteReservation(ctx, grand.ID, res.ID, "bob"); n != 0 {
		t.Fatalf("bob's delete removed %d rows", n)
	}
	rv, err := repo.GetReservation(ctx, grand.ID, res.ID, "alice")
	if err != nil {
		t.Fatalf("alice's get: %v", err)
	}
	if rv.Comment == nil || *rv.Comment != "sea view please" || !rv.From.Equal(from) {
		t.Fatalf("unexpected view: %+v", rv)
	}

	// reservation against a missing hotel fails cleanly
	if _, err := repo.CreateReservation(ctx, "no-such-hotel", "alice", from, to, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ghost hotel: want ErrNotFound, got %v", err)
	}

	// listAllForUser spans hotels and excludes other users
	if _, err := repo.CreateReservation(ctx, budget.ID, "alice", from, to, nil); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if _, err := repo.CreateReservation(ctx, budget.ID, "bob", from, to, nil); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	mine, err := repo.ListUserReservations(ctx, "alice")
	if err != nil {
		t.Fatalf("ListUserReservations: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 reservations for alice, got %d", len(mine))
	}

	// deleting the hotel cascades its reservations
	n, err := repo.DeleteHotel(ctx, grand.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteHotel: n=%d err=%v", n, err)
	}
	if _, err := repo.GetReservation(ctx, grand.ID, res.ID, "alice"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cascade: want ErrNotFound, got %v", err)
	}
	if n, _ := repo.DeleteHotel(ctx, grand.ID); n != 0 {
		t.Fatalf("second delete removed %d rows", n)
	}
}
