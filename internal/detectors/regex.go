package detectors

import (
	"regexp"
	"strings"
)

// RegexDetector matches secrets by a single compiled pattern. The optional
// group index selects a capture group as the secret value; zero means the
// whole match.
type RegexDetector struct {
	name    string
	pattern *regexp.Regexp
	group   int
}

// NewRegexDetector creates a detector for the given wire name and pattern.
func NewRegexDetector(name string, pattern *regexp.Regexp) *RegexDetector {
	return &RegexDetector{name: name, pattern: pattern}
}

// Name returns the detector's wire type.
func (d *RegexDetector) Name() string { return d.name }

// Detect returns all pattern matches in line.
func (d *RegexDetector) Detect(line string) []string {
	var secrets []string
	for _, match := range d.pattern.FindAllStringSubmatch(line, -1) {
		value := match[0]
		if d.group > 0 && d.group < len(match) {
			value = match[d.group]
		}
		if value != "" {
			secrets = append(secrets, value)
		}
	}
	return secrets
}

var (
	awsKeyPattern     = regexp.MustCompile(`(?:A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[A-Z0-9]{16}`)
	privateKeyPattern = regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`)
	basicAuthPattern  = regexp.MustCompile(`://[^\s:@/]+:([^\s:@/]+)@`)
	githubTokenPattern = regexp.MustCompile(`(?:ghp|gho|ghu|ghs|ghr|github_pat)_[A-Za-z0-9_]{36,255}`)
	slackTokenPattern  = regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,250}`)
	jwtPattern         = regexp.MustCompile(`eyJ[A-Za-z0-9_=-]+\.[A-Za-z0-9_=-]+\.?[A-Za-z0-9_.+/=-]*`)
	stripeKeyPattern   = regexp.MustCompile(`(?:sk|rk)_live_[0-9a-zA-Z]{24,99}`)
	secretKeywordPattern = regexp.MustCompile(`(?i)(?:secret|password|passwd|api_?key|auth_?token|access_?token|credential)s?["']?\s*[:=]\s*["']([^\s"']{8,})["']`)
)

// regexDetectors returns the built-in pattern detectors. Wire names follow
// the baseline document's detector naming.
func regexDetectors() []Detector {
	return []Detector{
		NewRegexDetector("AWS Access Key", awsKeyPattern),
		NewRegexDetector("Private Key", privateKeyPattern),
		&RegexDetector{name: "Basic Auth Credentials", pattern: basicAuthPattern, group: 1},
		NewRegexDetector("GitHub Token", githubTokenPattern),
		NewRegexDetector("Slack Token", slackTokenPattern),
		&jwtDetector{},
		NewRegexDetector("Stripe Access Key", stripeKeyPattern),
		&RegexDetector{name: "Secret Keyword", pattern: secretKeywordPattern, group: 1},
	}
}

// jwtDetector matches JSON web tokens. A structural check on the segments
// filters out base64-looking strings that merely start with "eyJ".
type jwtDetector struct{}

func (d *jwtDetector) Name() string { return "JSON Web Token" }

func (d *jwtDetector) Detect(line string) []string {
	var secrets []string
	for _, candidate := range jwtPattern.FindAllString(line, -1) {
		if isLikelyJWT(candidate) {
			secrets = append(secrets, candidate)
		}
	}
	return secrets
}

func isLikelyJWT(candidate string) bool {
	parts := strings.Split(candidate, ".")
	if len(parts) < 2 {
		return false
	}
	// header and payload segments must both be decodable-length base64url
	for _, part := range parts[:2] {
		if len(part) < 4 {
			return false
		}
	}
	return true
}
