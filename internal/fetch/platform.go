package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known job board provider.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

// platformProfile bundles the selectors that work for a provider's pages.
type platformProfile struct {
	hostMarkers []string
	content     []string
	noise       []string
}

var platformProfiles = map[Platform]platformProfile{
	PlatformGreenhouse: {
		hostMarkers: []string{"greenhouse.io"},
		content: []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		},
		noise: []string{
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		},
	},
	PlatformLever: {
		hostMarkers: []string{"lever.co"},
		content: []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		},
		noise: []string{
			".apply-section",
			".lever-application-form",
			".posting-apply",
		},
	},
	PlatformWorkday: {
		hostMarkers: []string{"workday.com", "myworkdayjobs.com"},
		content: []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		},
		noise: []string{
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		},
	},
	PlatformAshby: {
		hostMarkers: []string{"ashbyhq.com"},
		content: []string{
			"[class*='_jobPosting']",
			"[class*='_description']",
			"main",
		},
		noise: []string{
			"[class*='_applicationForm']",
			"[class*='_applyButton']",
		},
	},
}

// commonNoiseSelectors are stripped from every platform's pages: application
// forms, EEO boilerplate, share widgets, and consent banners.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board provider from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	for platform, profile := range platformProfiles {
		for _, marker := range profile.hostMarkers {
			if strings.Contains(host, marker) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for the given platform,
// falling back to generic job posting selectors.
func PlatformContentSelectors(platform Platform) []string {
	if profile, ok := platformProfiles[platform]; ok {
		return profile.content
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns noise exclusion selectors for the platform,
// always including the common set.
func PlatformNoiseSelectors(platform Platform) []string {
	out := append([]string(nil), commonNoiseSelectors...)
	if profile, ok := platformProfiles[platform]; ok {
		out = append(out, profile.noise...)
	}
	return out
}
