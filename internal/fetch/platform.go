package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board or applicant tracking system.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS.
	PlatformWorkday Platform = "workday"
	// PlatformAshby is the Ashby ATS.
	PlatformAshby Platform = "ashby"
	// PlatformPersonio is the Personio ATS, common on German job boards.
	PlatformPersonio Platform = "personio"
	// PlatformUnknown is an unrecognized platform.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the hosting platform from a job posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com") || strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "ashbyhq.com"):
		return PlatformAshby
	case strings.Contains(host, "personio.de") || strings.Contains(host, "personio.com") ||
		strings.Contains(host, "jobs.personio"):
		return PlatformPersonio
	}

	return PlatformUnknown
}

// ContentSelectors returns content selectors for a platform, most specific first.
func ContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		}
	case PlatformAshby:
		return []string{
			"#job-overview",
			"._description_",
			".ashby-job-posting-content",
			"main",
		}
	case PlatformPersonio:
		return []string{
			".job-description",
			"#job-details",
			".jobs-content",
			"main",
		}
	default:
		return []string{
			".job-description",
			".job-content",
			"#job-description",
			"#job-content",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// NoiseSelectors returns elements to strip before text extraction. Application
// forms and legal boilerplate would otherwise pollute keyword extraction.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",
		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	case PlatformPersonio:
		return append(common,
			".application-form-container",
			"#apply",
		)
	default:
		return common
	}
}
