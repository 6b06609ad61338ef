package sqlite_test

import (
	"context"
	"testing"

	"github.com/tmarsden/taskboard/internal/domain"
	"github.com/tmarsden/taskboard/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, PasswordHash: "hash"}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func TestTaskRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	assignee := createTestUser(t, db, "assignee@example.com")
	due := "2026-09-01"

	task := &domain.Task{
		Text:       "Buy milk",
		CreatedBy:  creator.ID,
		AssignedTo: &assignee.ID,
		DueDate:    &due,
	}

	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected task ID to be set after create")
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestTaskRepository_Create_OptionalFieldsAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")

	task := &domain.Task{Text: "Unassigned, no due date", CreatedBy: creator.ID}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].AssignedTo != nil {
		t.Fatalf("expected nil AssignedTo, got %v", *tasks[0].AssignedTo)
	}
	if tasks[0].DueDate != nil {
		t.Fatalf("expected nil DueDate, got %v", *tasks[0].DueDate)
	}
}

func TestTaskRepository_Create_UnknownCreatorRejected(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	// created_by has a foreign key to users.
	task := &domain.Task{Text: "Orphan", CreatedBy: 999}
	if err := repo.Create(ctx, task); err == nil {
		t.Fatal("expected foreign key error for unknown creator")
	}
}

func TestTaskRepository_ListAll_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")

	for _, text := range []string{"first", "second", "third"} {
		if err := repo.Create(ctx, &domain.Task{Text: text, CreatedBy: creator.ID}); err != nil {
			t.Fatalf("Create %s: %v", text, err)
		}
	}

	tasks, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Text != "third" || tasks[2].Text != "first" {
		t.Fatalf("expected newest first, got %s ... %s", tasks[0].Text, tasks[2].Text)
	}
}

func TestTaskRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "c@example.com")
	assignee := createTestUser(t, db, "a@example.com")
	due := "2026-01-15"

	in := &domain.Task{Text: "Round trip", CreatedBy: creator.ID, AssignedTo: &assignee.ID, DueDate: &due}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	out := tasks[0]
	if out.Text != "Round trip" || out.CreatedBy != creator.ID {
		t.Fatalf("unexpected task: %+v", out)
	}
	if out.AssignedTo == nil || *out.AssignedTo != assignee.ID {
		t.Fatalf("expected AssignedTo %d, got %v", assignee.ID, out.AssignedTo)
	}
	if out.DueDate == nil || *out.DueDate != due {
		t.Fatalf("expected DueDate %s, got %v", due, out.DueDate)
	}
}
