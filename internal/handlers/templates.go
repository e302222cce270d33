package handlers

import (
	"html/template"
	"net/http"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
	"github.com/csg33k/madrasah-enrollment/internal/search"
)

// NOTE: In a full project these would be .templ files compiled via `templ generate`.
// They are inlined here as html/template for zero-dependency portability.
// Swap to templ by moving each block to its own .templ file and calling component(data).Render(ctx, w).

var funcs = template.FuncMap{
	"humanize":      domain.Humanize,
	"countryLabel":  domain.CountryLabel,
	"tzLabel":       domain.TimezoneLabel,
	"langLabel":     domain.LanguageLabel,
	"joinInterests": domain.JoinInterests,
	"joinDays":      domain.JoinDays,
}

var basePrefix = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Madrasah Enrollment</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
<style>
  :root {
    --ink: #1c2a1f;
    --paper: #f7f5ef;
    --accent: #2c6e49;
    --muted: #6b7268;
  }
  body { background: var(--paper); color: var(--ink); font-family: system-ui, sans-serif; min-height: 100vh; }
  .card { background: #fff; border: 1px solid #ddd6c8; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,.06); }
  .field-error { color: #b3261e; font-size: 0.8rem; margin-top: 2px; }
  .btn { background: var(--accent); color: #fff; border-radius: 6px; padding: 0.5rem 1.25rem; font-weight: 600; }
  .btn:hover { filter: brightness(1.1); }
</style>
</head>
<body class="p-6">
<div class="max-w-4xl mx-auto">
`

var baseSuffix = `
</div>
</body>
</html>`

var enrollmentTmpl = template.Must(template.New("enroll").Funcs(funcs).Parse(basePrefix + `
<header class="mb-8 text-center">
  <h1 class="text-3xl font-bold text-[color:var(--accent)]">Student Enrollment</h1>
  <p class="text-[color:var(--muted)] mt-1">Online Madrasah Application Form</p>
</header>

<form id="enroll-form" class="card p-6 space-y-8"
      hx-post="/enroll" hx-target="#form-feedback" hx-swap="innerHTML">

  <section>
    <h2 class="text-xl font-semibold mb-1">Student Information</h2>
    <p class="text-sm text-[color:var(--muted)] mb-4">Please provide the student's details</p>
    <div class="grid md:grid-cols-2 gap-4">
      <label class="block">Full Name *
        <input name="fullName" class="w-full border rounded p-2" data-field="fullName">
      </label>
      <label class="block">Gender *
        <select name="gender" class="w-full border rounded p-2" data-field="gender">
          <option value="">Select...</option>
          <option value="male">Male</option>
          <option value="female">Female</option>
        </select>
      </label>
      <label class="block">Date of Birth *
        <input type="date" name="dateOfBirth" class="w-full border rounded p-2" data-field="dateOfBirth">
      </label>
      <label class="block">Country *
        <select name="country" class="w-full border rounded p-2" data-field="country">
          <option value="">Select...</option>
          {{range .Countries}}<option value="{{.Code}}">{{.Label}}</option>{{end}}
        </select>
      </label>
      <label class="block">Timezone
        <select name="timezone" class="w-full border rounded p-2" data-field="timezone">
          <option value="">Select...</option>
          {{range .Timezones}}<option value="{{.Code}}">{{.Label}}</option>{{end}}
        </select>
      </label>
      <label class="block">Native Language *
        <select name="nativeLanguage" class="w-full border rounded p-2" data-field="nativeLanguage">
          <option value="">Select...</option>
          {{range .Languages}}<option value="{{.Code}}">{{.Label}}</option>{{end}}
        </select>
      </label>
    </div>
  </section>

  <section>
    <h2 class="text-xl font-semibold mb-4">Parent/Guardian Information</h2>
    <div class="grid md:grid-cols-2 gap-4">
      <label class="block">Guardian Name *
        <input name="guardianName" class="w-full border rounded p-2" data-field="guardianName">
      </label>
      <label class="block">Relationship *
        <select name="relationship" class="w-full border rounded p-2" data-field="relationship">
          <option value="">Select...</option>
          <option value="father">Father</option>
          <option value="mother">Mother</option>
          <option value="guardian">Guardian</option>
          <option value="other">Other</option>
        </select>
      </label>
      <label class="block">WhatsApp Number *
        <input name="whatsappNumber" placeholder="+1234567890" class="w-full border rounded p-2" data-field="whatsappNumber">
      </label>
      <label class="block">Email *
        <input name="email" class="w-full border rounded p-2" data-field="email">
      </label>
    </div>
  </section>

  <section>
    <h2 class="text-xl font-semibold mb-4">Academic Background</h2>
    <div class="grid md:grid-cols-2 gap-4">
      <label class="block">Level of Islamic Education *
        <select name="level" class="w-full border rounded p-2" data-field="level">
          <option value="">Select...</option>
          <option value="beginner">Beginner</option>
          <option value="intermediate">Intermediate</option>
          <option value="advanced">Advanced</option>
        </select>
      </label>
      <label class="block">Quran Reading Ability *
        <select name="quranReadingAbility" class="w-full border rounded p-2" data-field="quranReadingAbility">
          <option value="">Select...</option>
          <option value="cannot_read">Cannot read Arabic</option>
          <option value="basic">Basic reading (slow)</option>
          <option value="fluent">Fluent reading</option>
          <option value="memorizing">Currently memorizing</option>
        </select>
      </label>
      <label class="block">Tajweed Knowledge *
        <select name="tajweedKnowledge" class="w-full border rounded p-2" data-field="tajweedKnowledge">
          <option value="">Select...</option>
          <option value="none">No knowledge</option>
          <option value="basic">Basic rules</option>
          <option value="intermediate">Intermediate</option>
          <option value="advanced">Advanced</option>
        </select>
      </label>
      <label class="block">Previous Madrasah (if any)
        <input name="previousMadrasah" class="w-full border rounded p-2" data-field="previousMadrasah">
      </label>
    </div>
  </section>

  <section>
    <h2 class="text-xl font-semibold mb-4">Class Preferences</h2>
    <fieldset class="mb-4" data-field="interestAreas">
      <legend class="font-medium">Interest Areas *</legend>
      <div class="grid md:grid-cols-2 gap-1 mt-1">
        <label><input type="checkbox" name="interestAreas" value="spelling"> Spelling &amp; Arabic Alphabet</label>
        <label><input type="checkbox" name="interestAreas" value="arabic"> Arabic Studies</label>
        <label><input type="checkbox" name="interestAreas" value="hifz"> Hifz (Quran Memorization)</label>
        <label><input type="checkbox" name="interestAreas" value="tajweed"> Tajweed</label>
        <label><input type="checkbox" name="interestAreas" value="islamic_studies"> Islamic Studies</label>
      </div>
    </fieldset>
    <fieldset class="mb-4" data-field="preferredDays">
      <legend class="font-medium">Preferred Days *</legend>
      <div class="grid md:grid-cols-4 gap-1 mt-1">
        {{range .Weekdays}}<label><input type="checkbox" name="preferredDays" value="{{.}}"> {{humanize (printf "%s" .)}}</label>
        {{end}}
      </div>
    </fieldset>
    <div class="grid md:grid-cols-2 gap-4">
      <label class="block">Preferred Time *
        <input name="preferredTime" placeholder="e.g. After Maghrib, weekend mornings" class="w-full border rounded p-2" data-field="preferredTime">
      </label>
      <label class="block">Class Type *
        <select name="classType" class="w-full border rounded p-2" data-field="classType">
          <option value="">Select...</option>
          <option value="one_on_one">One on one</option>
          <option value="group">Group</option>
        </select>
      </label>
    </div>
  </section>

  <section>
    <h2 class="text-xl font-semibold mb-4">Additional Information</h2>
    <label class="block mb-4">Special Needs or Accommodations
      <textarea name="specialNeeds" rows="2" class="w-full border rounded p-2"
        placeholder="Please let us know if there are any special accommodations needed..."></textarea>
    </label>
    <label class="block mb-4">How did you hear about us?
      <select name="referralSource" class="w-full border rounded p-2">
        <option value="">Select...</option>
        <option value="social_media">Social media</option>
        <option value="friend_family">Friend or family</option>
        <option value="search_engine">Search engine</option>
        <option value="mosque">Mosque</option>
        <option value="advertisement">Advertisement</option>
        <option value="other">Other</option>
      </select>
    </label>
    <label class="block">Questions or Comments
      <textarea name="questions" rows="2" class="w-full border rounded p-2"></textarea>
    </label>
  </section>

  <label class="block" data-field="declaration">
    <input type="checkbox" name="declaration">
    I confirm that the information provided is accurate *
  </label>

  <div id="form-feedback"></div>
  <button type="submit" class="btn">Submit Application</button>
</form>

<script>
  // Forward every keystroke typed outside an input; a hidden sequence opens
  // the staff login.
  document.addEventListener('keydown', function (e) {
    if (e.target.closest('input, textarea, select')) return;
    if (e.key.length !== 1 && e.key !== '/') return;
    fetch('/admin/keys', {
      method: 'POST',
      headers: {'Content-Type': 'application/x-www-form-urlencoded'},
      body: 'key=' + encodeURIComponent(e.key),
    }).then(function (res) {
      var to = res.headers.get('HX-Redirect');
      if (to) window.location = to;
    });
  });
</script>
` + baseSuffix))

var enrollmentErrorsTmpl = template.Must(template.New("enrollErrors").Parse(`
<div class="card border-red-300 bg-red-50 p-4">
  <p class="font-semibold text-red-800">Please complete all required fields</p>
  <ul class="list-disc ml-5 mt-2 text-sm text-red-700">
    {{range $field, $msg := .}}<li data-field="{{$field}}">{{$msg}}</li>
    {{end}}
  </ul>
</div>`))

var enrollmentSuccessTmpl = template.Must(template.New("enrollSuccess").Parse(`
<div class="card border-green-300 bg-green-50 p-4">
  <p class="font-semibold text-green-800">Application submitted</p>
  <p class="text-sm text-green-700 mt-1">
    Thank you, {{.FullName}}'s application has been received. We will contact
    {{.GuardianName}} on WhatsApp or email shortly.
  </p>
  <p class="text-xs text-green-700 mt-2">Reference: {{.ID}}</p>
</div>`))

var loginTmpl = template.Must(template.New("login").Parse(basePrefix + `
<div class="card max-w-sm mx-auto mt-24 p-6">
  <h1 class="text-xl font-semibold mb-4">Staff Login</h1>
  <form hx-post="/admin/login" hx-target="this" hx-swap="outerHTML">
    <input type="password" name="password" placeholder="Password" autofocus
           class="w-full border rounded p-2 mb-3">
    {{if .Error}}<p class="field-error mb-2">{{.Error}}</p>{{end}}
    <button type="submit" class="btn w-full">Sign in</button>
  </form>
</div>
` + baseSuffix))

var panelTmpl = template.Must(template.New("panel").Funcs(funcs).Parse(basePrefix + `
<header class="flex items-center justify-between mb-6">
  <div>
    <h1 class="text-2xl font-bold">Enrollment Applications</h1>
    <p class="text-sm text-[color:var(--muted)]">
      Signed in as {{.Admin.Username}} · {{len .Filtered}} of {{len .All}} shown
    </p>
  </div>
  <div class="flex gap-2">
    <a class="btn" href="/admin/export.pdf?q={{.Query}}&window={{.Window}}">Export PDF</a>
    <a class="btn" href="/admin/users">Accounts</a>
    <button class="btn" hx-post="/admin/logout">Sign out</button>
  </div>
</header>

<form method="get" action="/admin" class="card p-4 mb-4 flex gap-3">
  <input name="q" value="{{.Query}}" placeholder="Search name, guardian, email or WhatsApp"
         class="flex-1 border rounded p-2">
  <select name="window" class="border rounded p-2">
    <option value="all" {{if eq .Window "all"}}selected{{end}}>All time</option>
    <option value="today" {{if eq .Window "today"}}selected{{end}}>Today</option>
    <option value="week" {{if eq .Window "week"}}selected{{end}}>Past week</option>
    <option value="month" {{if eq .Window "month"}}selected{{end}}>Past month</option>
  </select>
  <button type="submit" class="btn">Filter</button>
</form>

{{if .Filtered}}
<div class="card overflow-x-auto">
<table class="w-full text-sm">
  <thead class="bg-[color:var(--accent)] text-white">
    <tr>
      <th class="p-2 text-left">Date</th>
      <th class="p-2 text-left">Student</th>
      <th class="p-2 text-left">Guardian</th>
      <th class="p-2 text-left">Level</th>
      <th class="p-2 text-left">Interests</th>
      <th class="p-2 text-left">Class</th>
      <th class="p-2"></th>
    </tr>
  </thead>
  <tbody>
  {{range .Filtered}}
    <tr class="border-t">
      <td class="p-2">{{.SubmittedAt.Format "Jan 2, 2006"}}</td>
      <td class="p-2 font-medium">{{.FullName}}</td>
      <td class="p-2">{{.GuardianName}}</td>
      <td class="p-2 capitalize">{{.Level}}</td>
      <td class="p-2 capitalize">{{joinInterests .InterestAreas}}</td>
      <td class="p-2 capitalize">{{humanize (printf "%s" .ClassType)}}</td>
      <td class="p-2 text-right whitespace-nowrap">
        <a class="underline" href="/admin/submissions/{{.ID}}">View</a>
        <a class="underline ml-2" href="/admin/submissions/{{.ID}}/pdf">PDF</a>
      </td>
    </tr>
  {{end}}
  </tbody>
</table>
</div>
{{else}}
<div class="card p-8 text-center text-[color:var(--muted)]">No applications match.</div>
{{end}}
` + baseSuffix))

var detailTmpl = template.Must(template.New("detail").Funcs(funcs).Parse(basePrefix + `
<a class="underline text-sm" href="/admin">&larr; Back to applications</a>
<div class="card p-6 mt-3">
  <header class="flex items-center justify-between mb-6">
    <div>
      <h1 class="text-2xl font-bold">{{.FullName}}</h1>
      <p class="text-sm text-[color:var(--muted)]">
        Submitted {{.SubmittedAt.Format "Jan 2, 2006 3:04 PM"}}
      </p>
    </div>
    <a class="btn" href="/admin/submissions/{{.ID}}/pdf">Download PDF</a>
  </header>

  <div class="grid md:grid-cols-2 gap-6 text-sm">
    <section>
      <h2 class="font-semibold mb-2">Student Information</h2>
      <dl>
        <dt class="text-[color:var(--muted)]">Gender</dt><dd class="capitalize mb-1">{{.Gender}}</dd>
        <dt class="text-[color:var(--muted)]">Date of Birth</dt><dd class="mb-1">{{.DateOfBirth}}</dd>
        <dt class="text-[color:var(--muted)]">Country</dt><dd class="mb-1">{{countryLabel .Country}}</dd>
        <dt class="text-[color:var(--muted)]">Timezone</dt><dd class="mb-1">{{tzLabel .Timezone}}</dd>
        <dt class="text-[color:var(--muted)]">Native Language</dt><dd class="mb-1">{{langLabel .NativeLanguage}}</dd>
      </dl>
    </section>
    <section>
      <h2 class="font-semibold mb-2">Parent/Guardian</h2>
      <dl>
        <dt class="text-[color:var(--muted)]">Name</dt><dd class="mb-1">{{.GuardianName}}</dd>
        <dt class="text-[color:var(--muted)]">Relationship</dt><dd class="capitalize mb-1">{{.Relationship}}</dd>
        <dt class="text-[color:var(--muted)]">WhatsApp</dt><dd class="mb-1">{{.WhatsappNumber}}</dd>
        <dt class="text-[color:var(--muted)]">Email</dt><dd class="mb-1">{{.Email}}</dd>
      </dl>
    </section>
    <section>
      <h2 class="font-semibold mb-2">Academic Background</h2>
      <dl>
        <dt class="text-[color:var(--muted)]">Level</dt><dd class="capitalize mb-1">{{.Level}}</dd>
        <dt class="text-[color:var(--muted)]">Quran Reading</dt><dd class="capitalize mb-1">{{humanize (printf "%s" .QuranReadingAbility)}}</dd>
        <dt class="text-[color:var(--muted)]">Tajweed</dt><dd class="capitalize mb-1">{{humanize (printf "%s" .TajweedKnowledge)}}</dd>
        {{if .PreviousMadrasah}}<dt class="text-[color:var(--muted)]">Previous Madrasah</dt><dd class="mb-1">{{.PreviousMadrasah}}</dd>{{end}}
      </dl>
    </section>
    <section>
      <h2 class="font-semibold mb-2">Class Preferences</h2>
      <dl>
        <dt class="text-[color:var(--muted)]">Interest Areas</dt><dd class="capitalize mb-1">{{joinInterests .InterestAreas}}</dd>
        <dt class="text-[color:var(--muted)]">Preferred Days</dt><dd class="capitalize mb-1">{{joinDays .PreferredDays}}</dd>
        <dt class="text-[color:var(--muted)]">Preferred Time</dt><dd class="mb-1">{{.PreferredTime}}</dd>
        <dt class="text-[color:var(--muted)]">Class Type</dt><dd class="capitalize mb-1">{{humanize (printf "%s" .ClassType)}}</dd>
      </dl>
    </section>
    {{if or .SpecialNeeds .ReferralSource .Questions}}
    <section class="md:col-span-2">
      <h2 class="font-semibold mb-2">Additional Information</h2>
      <dl>
        {{if .SpecialNeeds}}<dt class="text-[color:var(--muted)]">Special Needs</dt><dd class="mb-1">{{.SpecialNeeds}}</dd>{{end}}
        {{if .ReferralSource}}<dt class="text-[color:var(--muted)]">Referral Source</dt><dd class="capitalize mb-1">{{humanize (printf "%s" .ReferralSource)}}</dd>{{end}}
        {{if .Questions}}<dt class="text-[color:var(--muted)]">Questions</dt><dd class="mb-1">{{.Questions}}</dd>{{end}}
      </dl>
    </section>
    {{end}}
  </div>
</div>
` + baseSuffix))

var usersTmpl = template.Must(template.New("users").Parse(basePrefix + `
<a class="underline text-sm" href="/admin">&larr; Back to applications</a>
<div class="card p-6 mt-3 max-w-xl">
  <h1 class="text-xl font-semibold mb-4">Admin Accounts</h1>

  {{if .Message}}<p class="field-error mb-3">{{.Message}}</p>{{end}}

  <table class="w-full text-sm mb-6">
    <thead><tr class="text-left border-b">
      <th class="p-2">Username</th><th class="p-2">Created</th><th class="p-2"></th>
    </tr></thead>
    <tbody>
    {{$self := .Admin.ID}}
    {{range .Users}}
      <tr class="border-b">
        <td class="p-2 font-medium">{{.Username}}{{if eq .ID $self}} <span class="text-xs text-[color:var(--muted)]">(you)</span>{{end}}</td>
        <td class="p-2">{{.CreatedAt.Format "Jan 2, 2006"}}</td>
        <td class="p-2 text-right">
          {{if ne .ID $self}}
          <button class="underline text-red-700"
                  hx-delete="/admin/users/{{.ID}}" hx-target="body"
                  hx-confirm="Delete account {{.Username}}?">Delete</button>
          {{end}}
        </td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <h2 class="font-semibold mb-2">Add Account</h2>
  <form hx-post="/admin/users" hx-target="body" class="flex gap-2">
    <input name="username" placeholder="Username" class="flex-1 border rounded p-2">
    <input type="password" name="password" placeholder="Password" class="flex-1 border rounded p-2">
    <button type="submit" class="btn">Add</button>
  </form>
</div>
` + baseSuffix))

type enrollmentPageData struct {
	Countries []domain.Option
	Timezones []domain.Option
	Languages []domain.Option
	Weekdays  []domain.Weekday
}

type panelData struct {
	Admin    *domain.AdminUser
	All      []domain.Submission
	Filtered []domain.Submission
	Query    string
	Window   search.Window
}

type usersData struct {
	Admin   *domain.AdminUser
	Users   []domain.AdminUser
	Message string
}

type loginData struct {
	Error string
}

func renderEnrollmentPage(w http.ResponseWriter) {
	writeHTML(w, enrollmentTmpl, enrollmentPageData{
		Countries: domain.Countries,
		Timezones: domain.Timezones,
		Languages: domain.Languages,
		Weekdays: []domain.Weekday{
			domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
			domain.Friday, domain.Saturday, domain.Sunday,
		},
	})
}

func renderEnrollmentErrors(w http.ResponseWriter, errs map[string]string) {
	writeHTML(w, enrollmentErrorsTmpl, errs)
}

func renderEnrollmentSuccess(w http.ResponseWriter, s *domain.Submission) {
	writeHTML(w, enrollmentSuccessTmpl, s)
}

func renderLoginPage(w http.ResponseWriter, errMsg string) {
	writeHTML(w, loginTmpl, loginData{Error: errMsg})
}

func renderPanel(w http.ResponseWriter, _ *http.Request, data panelData) {
	writeHTML(w, panelTmpl, data)
}

func renderSubmissionDetail(w http.ResponseWriter, s *domain.Submission) {
	writeHTML(w, detailTmpl, s)
}

func renderUserList(w http.ResponseWriter, u *domain.AdminUser, users []domain.AdminUser, msg string) {
	writeHTML(w, usersTmpl, usersData{Admin: u, Users: users, Message: msg})
}

// htmlStatus sets the content type before the status line goes out, so the
// error fragments that follow still render as HTML.
func htmlStatus(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
}

func writeHTML(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
