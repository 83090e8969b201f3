package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

const layoutHead = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"lines": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
	"date": func(t time.Time) string { return t.Format("January 2, 2006") },
}).Parse(`
{{define "welcome"}}` + layoutHead + `
  <div style="background: #000; color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0; color: #ff0000;">Welcome to Injai Channel!</h1>
    <p style="margin: 10px 0 0 0;">The Premier Destination for Guigui Rap Culture</p>
  </div>
  <div style="background: white; padding: 30px; border: 1px solid #ddd;">
    <h2 style="color: #333; margin-top: 0;">Thank You for Subscribing{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>You're now part of the Injai Channel community and will receive:</p>
    <ul style="color: #555; line-height: 1.6;">
      <li>Latest news and updates from the Guigui rap scene</li>
      <li>Exclusive artist interviews and behind-the-scenes content</li>
      <li>Event announcements and ticket pre-sales</li>
      <li>New music releases and video premieres</li>
    </ul>
  </div>
  <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #666;">
    <p><a href="{{.SiteURL}}/unsubscribe?email={{.Email}}" style="color: #666;">Unsubscribe</a></p>
  </div>
</div>{{end}}

{{define "newsletter"}}` + layoutHead + `
  <div style="background: #000; color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0; color: #ff0000;">Injai Channel Newsletter</h1>
    <p style="margin: 10px 0 0 0;">Latest from the Guigui Rap Scene</p>
  </div>
  <div style="background: white; padding: 30px; border: 1px solid #ddd;">
    <h2 style="color: #333; margin-top: 0;">{{.Subject}}</h2>
    <div style="background: #f8f9fa; padding: 20px; margin: 20px 0;">
      <h3 style="color: #333; margin-top: 0;">{{.Article.Title}}</h3>
      <p style="color: #666;">By {{.Article.Author}} &middot; {{date .Article.PublishedAt}}</p>
      <p style="color: #555; line-height: 1.6;">{{.Article.Excerpt}}</p>
    </div>
    <div style="color: #555; line-height: 1.6;">{{.Content}}</div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.SiteURL}}/news/{{.Article.ID}}" style="background: #ff0000; color: white; padding: 15px 30px; text-decoration: none;">Read Full Article</a>
    </div>
  </div>
  <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #666;">
    <p>You're receiving this because you subscribed to Injai Channel newsletter.</p>
    <p><a href="{{.SiteURL}}/unsubscribe?email={{.Email}}" style="color: #666;">Unsubscribe</a></p>
  </div>
</div>{{end}}

{{define "contact"}}` + layoutHead + `
  <h2 style="color: #333; border-bottom: 2px solid #ff0000; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background: #f8f9fa; padding: 20px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>
  <div style="background: white; padding: 20px; border: 1px solid #ddd;">
    <p style="line-height: 1.6; color: #555;">{{lines .Message}}</p>
  </div>
  <p style="font-size: 12px; color: #666;">Reply directly to this email to respond to {{.Name}}.</p>
</div>{{end}}

{{define "contact_reply"}}` + layoutHead + `
  <h2 style="color: #333; border-bottom: 2px solid #ff0000; padding-bottom: 10px;">Thank You for Contacting Us!</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for reaching out to Injai Channel. We have received your message regarding "<strong>{{.Subject}}</strong>" and will get back to you as soon as possible.</p>
  <div style="background: #f8f9fa; padding: 20px; margin: 20px 0;">
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p style="background: white; padding: 15px; border-left: 4px solid #ff0000;">{{lines .Message}}</p>
  </div>
  <p>We typically respond within 24-48 hours.</p>
</div>{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}

// WelcomeData fills the welcome email sent after a newsletter signup
type WelcomeData struct {
	Name    string
	Email   string
	SiteURL string
}

// NewsletterData fills one newsletter broadcast email. Content is trusted admin HTML.
type NewsletterData struct {
	Subject string
	Content template.HTML
	Article NewsletterArticle
	Email   string
	SiteURL string
}

type NewsletterArticle struct {
	ID          string
	Title       string
	Author      string
	Excerpt     string
	PublishedAt time.Time
}

// ContactData fills both the contact form forward and the auto-reply
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func Welcome(to string, data WelcomeData) (Message, error) {
	html, err := render("welcome", data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Welcome to Injai Channel Newsletter!", HTML: html}, nil
}

func Newsletter(to string, data NewsletterData) (Message, error) {
	html, err := render("newsletter", data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Injai Channel Newsletter: " + data.Subject, HTML: html}, nil
}

// ContactForward is delivered to the site owner with Reply-To set to the visitor.
func ContactForward(to string, data ContactData) (Message, error) {
	html, err := render("contact", data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, ReplyTo: data.Email, Subject: "Contact Form: " + data.Subject, HTML: html}, nil
}

func ContactAutoReply(data ContactData) (Message, error) {
	html, err := render("contact_reply", data)
	if err != nil {
		return Message{}, err
	}
	return Message{To: data.Email, Subject: "Thank you for contacting Injai Channel", HTML: html}, nil
}
