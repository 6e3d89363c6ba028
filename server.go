package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/StxvenDev/portfolio/internal/config"
	"github.com/StxvenDev/portfolio/internal/contact"
	"github.com/StxvenDev/portfolio/internal/content"
	"github.com/StxvenDev/portfolio/internal/markup"
	"github.com/StxvenDev/portfolio/internal/navigation"
)

const (
	resumeAsset    = "Steven_CV.pdf"
	resumeFilename = "Steven_Bossio_CV.pdf"
)

// site holds everything the handlers render from.
type site struct {
	cfg       *config.Config
	profile   content.Profile
	about     template.HTML
	submitter contact.Submitter
}

// navView is the data behind the desktop and mobile navigation fragments.
type navView struct {
	Path  string
	Home  bool
	Items []navigation.Item
	State navigation.State
	// OOB marks a fragment swapped out-of-band alongside another response.
	OOB bool
}

// ToggleURL is the fragment URL that flips the mobile menu from its current
// state.
func (v navView) ToggleURL() string {
	q := url.Values{}
	q.Set("open", strconv.FormatBool(v.State.MenuOpen))
	q.Set("page", v.Path)
	q.Set("toggle", "true")
	return "/nav/menu?" + q.Encode()
}

// SelectURL is the fragment URL for choosing a section in the mobile menu.
func (v navView) SelectURL(section string) string {
	return "/nav/select?" + url.Values{"section": {section}}.Encode()
}

// contactView is the data behind the contact form fragment.
type contactView struct {
	contact.Snapshot
	Notification *contact.Notification
}

func newSite(cfg *config.Config, submitter contact.Submitter) (*site, error) {
	profile := content.DefaultProfile()
	about, err := markup.Markdown(profile.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about text: %w", err)
	}
	return &site{cfg: cfg, profile: profile, about: about, submitter: submitter}, nil
}

func (s *site) nav(path string, state navigation.State) navView {
	return navView{
		Path:  path,
		Home:  path == "/",
		Items: navigation.Items(path, s.profile.ResumePath),
		State: state,
	}
}

// page returns the data shared by every full page.
func (s *site) page(c *gin.Context, title string) gin.H {
	path := c.Request.URL.Path
	return gin.H{
		"title":   title,
		"path":    path,
		"profile": s.profile,
		"nav":     s.nav(path, navigation.NewState()),
	}
}

// newRouter builds the gin engine serving every page and fragment.
func newRouter(cfg *config.Config, submitter contact.Submitter) (*gin.Engine, error) {
	s, err := newSite(cfg, submitter)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID(), compress())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		data := s.page(c, s.profile.Name)
		data["about"] = s.about
		data["workIntro"] = WorkIntro
		data["portfolioBlurb"] = PortfolioBlurb
		data["form"] = contactView{}
		data["offset"] = cfg.ScrollOffset
		c.HTML(http.StatusOK, "index.html", data)
	})

	r.GET("/certifications", func(c *gin.Context) {
		data := s.page(c, "Certifications")
		data["intro"] = CertificationsIntro
		data["certifications"] = content.Certifications()
		c.HTML(http.StatusOK, "certifications.html", data)
	})

	r.GET("/skills", func(c *gin.Context) {
		data := s.page(c, "Technical Skills")
		data["intro"] = SkillsIntro
		data["categories"] = content.SkillCategories()
		c.HTML(http.StatusOK, "skills.html", data)
	})

	r.GET("/projects", func(c *gin.Context) {
		data := s.page(c, "All Projects")
		data["intro"] = ProjectsIntro
		data["projects"] = content.ProjectSummaries()
		c.HTML(http.StatusOK, "projects.html", data)
	})

	// The slug is accepted but every project resolves to the same case study.
	r.GET("/projects/:slug", func(c *gin.Context) {
		project := content.ProjectBySlug(c.Param("slug"))
		data := s.page(c, project.Title)
		data["project"] = project
		c.HTML(http.StatusOK, "project.html", data)
	})

	r.GET("/resume.pdf", s.serveResume)
	r.GET("/resume", s.serveResume)

	// HTMX navigation fragments
	r.POST("/nav/scroll", s.handleScroll)
	r.GET("/nav/menu", s.handleMenu)
	r.GET("/nav/select", s.handleSelect)

	// HTMX contact form submission
	r.POST("/contact", s.handleContact)

	return r, nil
}

func (s *site) handleScroll(c *gin.Context) {
	var rects []navigation.SectionRect
	if err := json.Unmarshal([]byte(c.PostForm("rects")), &rects); err != nil {
		c.String(http.StatusBadRequest, "invalid rects: %v", err)
		return
	}

	state := navigation.NewState()
	if prev := c.PostForm("active"); navigation.IsSection(prev) {
		state.Active = prev
	}
	state.OnScroll(rects, s.cfg.ScrollOffset)

	c.HTML(http.StatusOK, "desktop-nav", s.nav("/", state))
}

func (s *site) handleMenu(c *gin.Context) {
	open, _ := strconv.ParseBool(c.Query("open"))
	toggle, _ := strconv.ParseBool(c.Query("toggle"))

	state := navigation.NewState()
	if open {
		state.OpenMenu()
	}
	if toggle {
		state.ToggleMenu()
	}
	c.HTML(http.StatusOK, "mobile-nav", s.nav(pagePath(c), state))
}

func (s *site) handleSelect(c *gin.Context) {
	state := navigation.NewState()
	target := state.Select(c.Query("section"))

	trigger, err := json.Marshal(map[string]string{"scrollToSection": target})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Trigger", string(trigger))
	c.HTML(http.StatusOK, "mobile-nav", s.nav("/", state))
}

func (s *site) handleContact(c *gin.Context) {
	form := contact.NewForm(contact.Fields{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	})

	n := form.Submit(c.Request.Context(), s.submitter)

	// The form always swaps in so HTMX re-enables it; the menu closes too.
	nav := s.nav("/", navigation.NewState())
	nav.OOB = true
	c.HTML(http.StatusOK, "contact-result", gin.H{
		"form": contactView{Snapshot: form.Snapshot(), Notification: &n},
		"nav":  nav,
	})
}

func (s *site) serveResume(c *gin.Context) {
	data, err := s.readResume()
	if err != nil {
		log.Printf("Error reading resume: %v", err)
		c.String(http.StatusNotFound, "resume not available")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resumeFilename))
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}

func (s *site) readResume() ([]byte, error) {
	if s.cfg.ResumeFile != "" {
		return os.ReadFile(s.cfg.ResumeFile)
	}
	return staticFS.ReadFile("static/" + resumeAsset)
}

// pagePath is the page a fragment is rendered for, defaulting to home.
func pagePath(c *gin.Context) string {
	if p := c.Query("page"); p != "" && p[0] == '/' {
		return p
	}
	return "/"
}
