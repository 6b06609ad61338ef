package view

import "github.com/a-h/templ"

// LoginPage renders the login form. errMsg, when non-empty, is shown above
// the form.
func LoginPage(errMsg string) templ.Component {
	return page("Log in", func(hw *htmlWriter) {
		hw.raw(`<div class="container" style="max-width:400px">`)
		hw.raw(`<h1>Log in</h1>`)
		if errMsg != "" {
			hw.raw(`<p class="error">`)
			hw.text(errMsg)
			hw.raw(`</p>`)
		}
		hw.raw(`<form method="post" action="/login">`)
		hw.raw(`<input type="email" name="email" placeholder="Email" required>`)
		hw.raw(`<input type="password" name="password" placeholder="Password" required>`)
		hw.raw(`<button type="submit">Log in</button>`)
		hw.raw(`</form>`)
		hw.raw(`<p><a href="/register">Create an account</a></p>`)
		hw.raw(`</div>`)
	})
}

// RegisterPage renders the registration form.
func RegisterPage(errMsg string) templ.Component {
	return page("Sign up", func(hw *htmlWriter) {
		hw.raw(`<div class="container" style="max-width:400px">`)
		hw.raw(`<h1>Sign up</h1>`)
		if errMsg != "" {
			hw.raw(`<p class="error">`)
			hw.text(errMsg)
			hw.raw(`</p>`)
		}
		hw.raw(`<form method="post" action="/register">`)
		hw.raw(`<input type="email" name="email" placeholder="Email" required>`)
		hw.raw(`<input type="text" name="username" placeholder="Username (optional)">`)
		hw.raw(`<input type="password" name="password" placeholder="Password" required>`)
		hw.raw(`<input type="password" name="confirm_password" placeholder="Confirm password" required>`)
		hw.raw(`<button type="submit">Sign up</button>`)
		hw.raw(`</form>`)
		hw.raw(`<p><a href="/login">Already have an account? Log in</a></p>`)
		hw.raw(`</div>`)
	})
}
