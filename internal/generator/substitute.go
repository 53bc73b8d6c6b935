package generator

import (
	"strconv"
	"strings"
	"time"
)

// tokenPairs returns the closed token table as old/new pairs for a
// strings.Replacer. The table is fixed: substitution is literal replacement
// only, not a template language.
func tokenPairs(cfg *ProjectConfig, now time.Time) []string {
	fw := cfg.Framework
	return []string{
		"{{LANGUAGE}}", fw.Language,
		"{{LANGUAGE_VERSION}}", fw.LanguageVersion,
		"{{FRAMEWORK}}", fw.Framework,
		"{{PACKAGE_MANAGER}}", fw.PackageManager,
		"{{TEST_FRAMEWORK}}", fw.TestFramework,
		"{{COVERAGE_TOOL}}", fw.CoverageTool,
		"{{DOCKER_IMAGE}}", fw.DockerImage,
		"{{PROJECT_NAME}}", cfg.ProjectName,
		"{{PROJECT_DESCRIPTION}}", cfg.Description,
		"{{AUTHOR}}", cfg.Author,
		"{{GITLAB_URL}}", cfg.GitLabURL,
		"{{COVERAGE_THRESHOLD}}", cfg.CoverageThreshold,
		"{{GENERATION_DATE}}", now.Format("2006-01-02"),
		"{{YEAR}}", strconv.Itoa(now.Year()),
	}
}

// Substitute replaces every recognized token in content with the
// corresponding config value. Replacement is a single pass over the input:
// replaced output is never rescanned, so a value containing a token literal
// is inserted verbatim and not substituted again. Unrecognized {{...}}
// sequences are left untouched. There is no escaping mechanism;
// user-supplied values are inserted as-is.
func (g *Generator) Substitute(content string, cfg *ProjectConfig) string {
	return substitute(content, cfg, g.now())
}

func substitute(content string, cfg *ProjectConfig, now time.Time) string {
	return strings.NewReplacer(tokenPairs(cfg, now)...).Replace(content)
}
