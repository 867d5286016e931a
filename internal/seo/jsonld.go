package seo

import (
	"fmt"
	"strings"

	"kasambahay_backend/internal/search"
)

// PersonJSONLD renders schema.org Person structured data for a public
// worker profile page. Only index-visible fields appear here.
func PersonJSONLD(doc *search.WorkerDocument, siteURL string) map[string]interface{} {
	out := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Person",
		"name":        doc.FirstName,
		"url":         ProfileURL(siteURL, doc.Slug),
		"description": doc.Headline,
		"address": map[string]interface{}{
			"@type":           "PostalAddress",
			"addressLocality": doc.City,
			"addressRegion":   doc.Province,
			"addressCountry":  "PH",
		},
	}
	if len(doc.Skills) > 0 {
		out["knowsAbout"] = doc.Skills
	}
	if len(doc.Languages) > 0 {
		out["knowsLanguage"] = doc.Languages
	}
	return out
}

// Meta is the tag set an SSR layer or prerenderer needs for one page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
}

// ProfileMeta builds the title/description pair for a worker page.
func ProfileMeta(doc *search.WorkerDocument, siteURL, siteName string) Meta {
	title := fmt.Sprintf("%s, helper in %s | %s", doc.FirstName, doc.City, siteName)

	desc := doc.Headline
	if desc == "" {
		desc = fmt.Sprintf("%s is a domestic helper in %s, %s with %s of experience.",
			doc.FirstName, doc.City, doc.Province, yearsPhrase(doc.ExperienceYears))
	}
	if len(doc.Skills) > 0 {
		desc = fmt.Sprintf("%s Skills: %s.", desc, strings.Join(doc.Skills, ", "))
	}

	return Meta{
		Title:       title,
		Description: desc,
		Canonical:   ProfileURL(siteURL, doc.Slug),
	}
}

func ProfileURL(siteURL, slug string) string {
	return fmt.Sprintf("%s/workers/%s", strings.TrimRight(siteURL, "/"), slug)
}

// RobotsTxt allows everything public and keeps crawlers out of the API.
func RobotsTxt(siteURL string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /api/

Sitemap: %s/sitemap.xml
`, strings.TrimRight(siteURL, "/"))
}

func yearsPhrase(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
