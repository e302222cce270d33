package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/csg33k/madrasah-enrollment/internal/adapters/pdf"
	"github.com/csg33k/madrasah-enrollment/internal/admin"
	"github.com/csg33k/madrasah-enrollment/internal/domain"
	"github.com/csg33k/madrasah-enrollment/internal/ports"
	"github.com/csg33k/madrasah-enrollment/internal/search"
	"github.com/csg33k/madrasah-enrollment/internal/trigger"
	"github.com/csg33k/madrasah-enrollment/internal/validation"
)

const (
	sessionCookie = "admin_session"
	visitorCookie = "visitor_id"

	// Upper bound on tracked keystroke matchers. The cookie value is
	// client-chosen, so the map cannot be allowed to grow without limit.
	maxDetectors = 1024
)

type Handler struct {
	repo   ports.SubmissionRepository
	admins *admin.Service
	gen    ports.DocumentGenerator
	log    *log.Logger

	mu        sync.Mutex
	detectors map[string]*trigger.Detector
}

func New(repo ports.SubmissionRepository, admins *admin.Service, gen ports.DocumentGenerator, logger *log.Logger) *Handler {
	return &Handler{
		repo:      repo,
		admins:    admins,
		gen:       gen,
		log:       logger,
		detectors: make(map[string]*trigger.Detector),
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /enroll", h.enroll)

	mux.HandleFunc("POST /admin/keys", h.keystroke)
	mux.HandleFunc("GET /admin/login", h.loginForm)
	mux.HandleFunc("POST /admin/login", h.login)
	mux.HandleFunc("POST /admin/logout", h.logout)

	mux.HandleFunc("GET /admin", h.panel)
	mux.HandleFunc("GET /admin/submissions/{id}", h.viewSubmission)
	mux.HandleFunc("GET /admin/submissions/{id}/pdf", h.submissionPDF)
	mux.HandleFunc("GET /admin/export.pdf", h.exportReport)

	mux.HandleFunc("GET /admin/users", h.listUsers)
	mux.HandleFunc("POST /admin/users", h.createUser)
	mux.HandleFunc("DELETE /admin/users/{id}", h.deleteUser)
	return mux
}

// ── Public form ───────────────────────────────────────────────────────────────

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	// Every visitor gets an ID so keystroke progress survives across posts.
	if _, err := r.Cookie(visitorCookie); err != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     visitorCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	renderEnrollmentPage(w)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	in := parseEnrollmentForm(r)

	if errs := validation.Validate(in); errs != nil {
		htmlStatus(w, http.StatusUnprocessableEntity)
		renderEnrollmentErrors(w, errs)
		return
	}

	s, err := h.repo.CreateSubmission(r.Context(), in)
	if err != nil {
		h.log.Error("create submission", "err", err)
		http.Error(w, "could not save the application", 500)
		return
	}
	h.log.Info("application received", "id", s.ID, "student", s.FullName)
	renderEnrollmentSuccess(w, s)
}

func parseEnrollmentForm(r *http.Request) domain.SubmissionInput {
	areas := make([]domain.InterestArea, 0, len(r.Form["interestAreas"]))
	for _, v := range r.Form["interestAreas"] {
		areas = append(areas, domain.InterestArea(v))
	}
	days := make([]domain.Weekday, 0, len(r.Form["preferredDays"]))
	for _, v := range r.Form["preferredDays"] {
		days = append(days, domain.Weekday(v))
	}
	return domain.SubmissionInput{
		FullName:            r.FormValue("fullName"),
		Gender:              domain.Gender(r.FormValue("gender")),
		DateOfBirth:         r.FormValue("dateOfBirth"),
		Country:             r.FormValue("country"),
		Timezone:            r.FormValue("timezone"),
		NativeLanguage:      r.FormValue("nativeLanguage"),
		GuardianName:        r.FormValue("guardianName"),
		Relationship:        domain.Relationship(r.FormValue("relationship")),
		WhatsappNumber:      r.FormValue("whatsappNumber"),
		Email:               r.FormValue("email"),
		Level:               domain.Level(r.FormValue("level")),
		QuranReadingAbility: domain.QuranAbility(r.FormValue("quranReadingAbility")),
		TajweedKnowledge:    domain.TajweedLevel(r.FormValue("tajweedKnowledge")),
		PreviousMadrasah:    r.FormValue("previousMadrasah"),
		InterestAreas:       areas,
		PreferredDays:       days,
		PreferredTime:       r.FormValue("preferredTime"),
		ClassType:           domain.ClassType(r.FormValue("classType")),
		SpecialNeeds:        r.FormValue("specialNeeds"),
		ReferralSource:      domain.ReferralSource(r.FormValue("referralSource")),
		Questions:           r.FormValue("questions"),
		Declaration:         r.FormValue("declaration") == "on" || r.FormValue("declaration") == "true",
	}
}

// ── Hidden login trigger ──────────────────────────────────────────────────────

// keystroke consumes one key from the public page. The client posts every
// keystroke; nothing in the response reveals partial progress.
func (h *Handler) keystroke(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	c, err := r.Cookie(visitorCookie)
	if err != nil || c.Value == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.mu.Lock()
	d, ok := h.detectors[c.Value]
	if !ok {
		// At the cap, drop all partial matches rather than the request.
		// Losing a few keystrokes of progress costs a retype at worst.
		if len(h.detectors) >= maxDetectors {
			clear(h.detectors)
		}
		d = trigger.NewDetector()
		h.detectors[c.Value] = d
	}
	fired := d.Feed(r.FormValue("key"))
	h.mu.Unlock()

	if fired {
		w.Header().Set("HX-Redirect", "/admin/login")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	renderLoginPage(w, "")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	token, u, err := h.admins.Login(r.Context(), r.FormValue("password"))
	if errors.Is(err, admin.ErrInvalidCredentials) {
		htmlStatus(w, http.StatusUnauthorized)
		renderLoginPage(w, "Invalid password. Access denied.")
		return
	}
	if err != nil {
		h.log.Error("login", "err", err)
		http.Error(w, "login failed", 500)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.log.Info("admin login", "username", u.Username)
	w.Header().Set("HX-Redirect", "/admin")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		h.admins.Logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
	w.Header().Set("HX-Redirect", "/")
	w.WriteHeader(http.StatusNoContent)
}

// currentAdmin resolves the session cookie; nil means not logged in.
func (h *Handler) currentAdmin(r *http.Request) *domain.AdminUser {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	u, err := h.admins.Session(r.Context(), c.Value)
	if err != nil {
		h.log.Error("resolve session", "err", err)
		return nil
	}
	return u
}

func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) *domain.AdminUser {
	u := h.currentAdmin(r)
	if u == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
	return u
}

// ── Review panel ──────────────────────────────────────────────────────────────

// filterParams reads the text query and date window off the request. Unknown
// windows degrade to showing everything.
func filterParams(r *http.Request) (string, search.Window) {
	q := r.URL.Query().Get("q")
	win := search.Window(r.URL.Query().Get("window"))
	if !win.Valid() {
		win = search.WindowAll
	}
	return q, win
}

func (h *Handler) panel(w http.ResponseWriter, r *http.Request) {
	u := h.requireAdmin(w, r)
	if u == nil {
		return
	}
	subs, err := h.repo.ListSubmissions(r.Context())
	if err != nil {
		h.log.Error("list submissions", "err", err)
		http.Error(w, err.Error(), 500)
		return
	}
	q, win := filterParams(r)
	filtered := search.Filter(subs, q, win, time.Now())
	renderPanel(w, r, panelData{
		Admin:    u,
		All:      subs,
		Filtered: filtered,
		Query:    q,
		Window:   win,
	})
}

func (h *Handler) viewSubmission(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}
	s, err := h.repo.GetSubmission(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if s == nil {
		http.NotFound(w, r)
		return
	}
	renderSubmissionDetail(w, s)
}

func (h *Handler) submissionPDF(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}
	s, err := h.repo.GetSubmission(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if s == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.ApplicationFilename(s)+`"`)
	if err := h.gen.Application(r.Context(), s, w); err != nil {
		h.log.Error("application pdf", "id", s.ID, "err", err)
	}
}

// exportReport downloads the report for whatever the panel currently shows,
// filters included.
func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}
	subs, err := h.repo.ListSubmissions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	q, win := filterParams(r)
	filtered := search.Filter(subs, q, win, time.Now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.ReportFilename(time.Now())+`"`)
	if err := h.gen.Report(r.Context(), filtered, w); err != nil {
		h.log.Error("report pdf", "err", err)
	}
}

// ── Account management ────────────────────────────────────────────────────────

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	u := h.requireAdmin(w, r)
	if u == nil {
		return
	}
	admins, err := h.admins.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	renderUserList(w, u, admins, "")
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	u := h.requireAdmin(w, r)
	if u == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	_, err := h.admins.Create(r.Context(), r.FormValue("username"), r.FormValue("password"))
	msg := ""
	switch {
	case errors.Is(err, admin.ErrDuplicateUsername):
		msg = "Username already exists"
		htmlStatus(w, http.StatusConflict)
	case errors.Is(err, admin.ErrEmptyField):
		msg = "Username and password are required"
		htmlStatus(w, http.StatusUnprocessableEntity)
	case err != nil:
		h.log.Error("create admin", "err", err)
		http.Error(w, err.Error(), 500)
		return
	default:
		h.log.Info("admin created", "username", r.FormValue("username"), "by", u.Username)
	}

	admins, lerr := h.admins.List(r.Context())
	if lerr != nil {
		http.Error(w, lerr.Error(), 500)
		return
	}
	renderUserList(w, u, admins, msg)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	u := h.requireAdmin(w, r)
	if u == nil {
		return
	}

	err := h.admins.Delete(r.Context(), u.ID, r.PathValue("id"))
	msg := ""
	switch {
	case errors.Is(err, admin.ErrSelfDeletion):
		msg = "You cannot delete your own account"
		htmlStatus(w, http.StatusConflict)
	case errors.Is(err, admin.ErrLastAdmin):
		msg = "At least one admin account must remain"
		htmlStatus(w, http.StatusConflict)
	case err != nil:
		h.log.Error("delete admin", "err", err)
		http.Error(w, err.Error(), 500)
		return
	default:
		h.log.Info("admin deleted", "id", r.PathValue("id"), "by", u.Username)
	}

	admins, lerr := h.admins.List(r.Context())
	if lerr != nil {
		http.Error(w, lerr.Error(), 500)
		return
	}
	renderUserList(w, u, admins, msg)
}
