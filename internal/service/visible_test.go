package service_test

import (
	"reflect"
	"testing"

	"github.com/tmarsden/taskboard/internal/domain"
	"github.com/tmarsden/taskboard/internal/service"
)

func ptr[T any](v T) *T { return &v }

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Text: "mine, due yesterday", CreatedBy: 1, DueDate: ptr("2024-01-01")},
		{ID: 2, Text: "assigned to me", CreatedBy: 2, AssignedTo: ptr(int64(1))},
		{ID: 3, Text: "someone else's", CreatedBy: 2, AssignedTo: ptr(int64(2))},
		{ID: 4, Text: "mine, due today", CreatedBy: 1, DueDate: ptr("2024-01-02")},
		{ID: 5, Text: "no due date", CreatedBy: 3},
	}
}

func taskIDs(tasks []domain.Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestVisibleTasks_All(t *testing.T) {
	tasks := sampleTasks()
	got := service.VisibleTasks(tasks, domain.FilterAll, 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("expected every task, got %v", taskIDs(got))
	}
}

func TestVisibleTasks_AssignedToMe(t *testing.T) {
	got := service.VisibleTasks(sampleTasks(), domain.FilterAssigned, 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), []int64{2}) {
		t.Fatalf("expected [2], got %v", taskIDs(got))
	}
}

func TestVisibleTasks_CreatedByMe(t *testing.T) {
	got := service.VisibleTasks(sampleTasks(), domain.FilterCreated, 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), []int64{1, 4}) {
		t.Fatalf("expected [1 4], got %v", taskIDs(got))
	}
}

func TestVisibleTasks_Overdue(t *testing.T) {
	tasks := []domain.Task{{ID: 1, DueDate: ptr("2024-01-01")}}

	got := service.VisibleTasks(tasks, domain.FilterOverdue, 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), []int64{1}) {
		t.Fatalf("expected the overdue task, got %v", taskIDs(got))
	}

	// The same task is not due today.
	got = service.VisibleTasks(tasks, domain.FilterToday, 1, "2024-01-02")
	if len(got) != 0 {
		t.Fatalf("expected no tasks due today, got %v", taskIDs(got))
	}
}

func TestVisibleTasks_DueToday(t *testing.T) {
	got := service.VisibleTasks(sampleTasks(), domain.FilterToday, 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), []int64{4}) {
		t.Fatalf("expected [4], got %v", taskIDs(got))
	}
}

func TestVisibleTasks_OverdueAndTodayDisjoint(t *testing.T) {
	tasks := sampleTasks()
	today := "2024-01-02"

	overdue := service.VisibleTasks(tasks, domain.FilterOverdue, 1, today)
	dueToday := service.VisibleTasks(tasks, domain.FilterToday, 1, today)

	seen := make(map[int64]bool)
	for _, task := range overdue {
		seen[task.ID] = true
	}
	for _, task := range dueToday {
		if seen[task.ID] {
			t.Fatalf("task %d is both overdue and due today", task.ID)
		}
	}
}

func TestVisibleTasks_NoDueDateNeverDue(t *testing.T) {
	tasks := []domain.Task{{ID: 1, CreatedBy: 1}}

	if got := service.VisibleTasks(tasks, domain.FilterOverdue, 1, "2024-01-02"); len(got) != 0 {
		t.Fatalf("task without due date matched overdue: %v", taskIDs(got))
	}
	if got := service.VisibleTasks(tasks, domain.FilterToday, 1, "2024-01-02"); len(got) != 0 {
		t.Fatalf("task without due date matched today: %v", taskIDs(got))
	}
}

func TestVisibleTasks_UnknownFilterBehavesLikeAll(t *testing.T) {
	tasks := sampleTasks()
	got := service.VisibleTasks(tasks, domain.Filter("bogus"), 1, "2024-01-02")
	if !reflect.DeepEqual(taskIDs(got), taskIDs(tasks)) {
		t.Fatalf("unknown filter should match everything, got %v", taskIDs(got))
	}
}

func TestVisibleTasks_SubsetAndOrderPreserved(t *testing.T) {
	tasks := sampleTasks()
	filters := []domain.Filter{
		domain.FilterAll, domain.FilterAssigned, domain.FilterCreated,
		domain.FilterOverdue, domain.FilterToday,
	}

	inInput := make(map[int64]int)
	for i, task := range tasks {
		inInput[task.ID] = i
	}

	for _, f := range filters {
		got := service.VisibleTasks(tasks, f, 1, "2024-01-02")
		lastIdx := -1
		for _, task := range got {
			idx, ok := inInput[task.ID]
			if !ok {
				t.Fatalf("filter %s produced task %d not in input", f, task.ID)
			}
			if idx <= lastIdx {
				t.Fatalf("filter %s broke input order at task %d", f, task.ID)
			}
			lastIdx = idx
		}
	}
}

func TestVisibleTasks_Idempotent(t *testing.T) {
	tasks := sampleTasks()
	filters := []domain.Filter{
		domain.FilterAll, domain.FilterAssigned, domain.FilterCreated,
		domain.FilterOverdue, domain.FilterToday,
	}

	for _, f := range filters {
		once := service.VisibleTasks(tasks, f, 1, "2024-01-02")
		twice := service.VisibleTasks(once, f, 1, "2024-01-02")
		if !reflect.DeepEqual(taskIDs(once), taskIDs(twice)) {
			t.Fatalf("filter %s not idempotent: %v vs %v", f, taskIDs(once), taskIDs(twice))
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Filter
	}{
		{"all", domain.FilterAll},
		{"assigned", domain.FilterAssigned},
		{"created", domain.FilterCreated},
		{"overdue", domain.FilterOverdue},
		{"today", domain.FilterToday},
		{"", domain.FilterAll},
		{"nonsense", domain.FilterAll},
	}

	for _, tc := range tests {
		if got := domain.ParseFilter(tc.in); got != tc.want {
			t.Fatalf("ParseFilter(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestShouldNotify(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want bool
	}{
		{"assigned by someone else", domain.Task{CreatedBy: 2, AssignedTo: ptr(int64(1))}, true},
		{"self-assigned", domain.Task{CreatedBy: 1, AssignedTo: ptr(int64(1))}, false},
		{"assigned to someone else", domain.Task{CreatedBy: 2, AssignedTo: ptr(int64(3))}, false},
		{"unassigned", domain.Task{CreatedBy: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.ShouldNotify(&tc.task, 1); got != tc.want {
				t.Fatalf("ShouldNotify = %v, want %v", got, tc.want)
			}
		})
	}
}
