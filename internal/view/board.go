package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/tmarsden/taskboard/internal/domain"
)

var filterLabels = []struct {
	Filter domain.Filter
	Label  string
}{
	{domain.FilterAll, "All"},
	{domain.FilterAssigned, "Assigned to Me"},
	{domain.FilterCreated, "Created by Me"},
	{domain.FilterOverdue, "Overdue"},
	{domain.FilterToday, "Due Today"},
}

// BoardPage renders the task board for an authenticated user. visible is the
// already-filtered task list; users is the full directory for the assignee
// select and name resolution.
func BoardPage(user *domain.User, users []domain.User, visible []domain.Task, filter domain.Filter) templ.Component {
	names := userNames(users)
	return page("Task Board", func(hw *htmlWriter) {
		// Opening the notification stream on load keeps assignment toasts
		// flowing for the lifetime of the page.
		hw.raw(`<div class="container" data-on-load="@get('/notifications')">`)
		hw.raw(`<h1>Task Board</h1>`)
		hw.raw(`<p>Signed in as `)
		hw.text(user.DisplayName())
		hw.raw(`</p>`)
		hw.raw(`<div id="board-error"></div>`)

		hw.raw(`<form data-on-submit="@post('/board/tasks', {contentType: 'form'})">`)
		hw.raw(`<input type="text" name="task" placeholder="New task..." required>`)
		hw.raw(`<select name="assigned_to"><option value="">Assign to (optional)</option>`)
		for _, u := range users {
			hw.rawf(`<option value="%d">`, u.ID)
			hw.text(u.DisplayName())
			hw.raw(`</option>`)
		}
		hw.raw(`</select>`)
		hw.raw(`<input type="date" name="due_date">`)
		activeFilterInput(hw, filter)
		hw.raw(`<button type="submit">Add Task</button>`)
		hw.raw(`</form>`)

		hw.raw(`<form method="post" action="/logout"><button class="logout" type="submit">Log out</button></form>`)

		taskList(hw, visible, names, filter)

		hw.raw(`<div id="notifications"></div>`)
		hw.raw(`</div>`)
	})
}

// TaskList renders the filter buttons and the visible task list as a
// patchable fragment.
func TaskList(visible []domain.Task, users []domain.User, filter domain.Filter) templ.Component {
	names := userNames(users)
	return component(func(hw *htmlWriter) {
		taskList(hw, visible, names, filter)
	})
}

// ActiveFilter renders the hidden input that carries the current filter
// along with task creation, as a patchable fragment.
func ActiveFilter(filter domain.Filter) templ.Component {
	return component(func(hw *htmlWriter) {
		activeFilterInput(hw, filter)
	})
}

// BoardError renders the board error message fragment.
func BoardError(msg string) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div id="board-error">`)
		if msg != "" {
			hw.raw(`<p class="error">`)
			hw.text(msg)
			hw.raw(`</p>`)
		}
		hw.raw(`</div>`)
	})
}

// NotificationToast renders a single assignment notification.
func NotificationToast(task domain.Task, creatorName string) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="toast">New task assigned to you by `)
		hw.text(creatorName)
		hw.raw(`: &quot;`)
		hw.text(task.Text)
		hw.raw(`&quot;</div>`)
	})
}

func activeFilterInput(hw *htmlWriter, filter domain.Filter) {
	hw.rawf(`<input type="hidden" id="active-filter" name="filter" value="%s">`, templ.EscapeString(string(filter)))
}

func taskList(hw *htmlWriter, visible []domain.Task, names map[int64]string, filter domain.Filter) {
	hw.raw(`<div id="task-list">`)

	hw.raw(`<div class="filters">`)
	for _, f := range filterLabels {
		class := ""
		if f.Filter == filter {
			class = ` class="active"`
		}
		hw.rawf(`<button%s data-on-click="@get('/board/tasks?filter=%s')">`, class, f.Filter)
		hw.text(f.Label)
		hw.raw(`</button>`)
	}
	hw.raw(`</div>`)

	if len(visible) == 0 {
		hw.raw(`<p class="small">No tasks.</p>`)
	}
	for _, t := range visible {
		hw.raw(`<div class="task"><p><strong>`)
		hw.text(t.Text)
		hw.raw(`</strong></p>`)

		assignee := "None"
		if t.AssignedTo != nil {
			if name, ok := names[*t.AssignedTo]; ok {
				assignee = name
			} else {
				assignee = "#" + strconv.FormatInt(*t.AssignedTo, 10)
			}
		}
		hw.raw(`<p class="small">Assigned to: `)
		hw.text(assignee)
		hw.raw(`</p>`)

		due := "N/A"
		if t.DueDate != nil {
			due = *t.DueDate
		}
		hw.raw(`<p class="small">Due: `)
		hw.text(due)
		hw.raw(`</p></div>`)
	}

	hw.raw(`</div>`)
}

func userNames(users []domain.User) map[int64]string {
	names := make(map[int64]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}
	return names
}
