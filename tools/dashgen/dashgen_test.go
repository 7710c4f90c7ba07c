package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/sale-prospector/tools/dashgen/dashboards"
	"github.com/donaldgifford/sale-prospector/tools/dashgen/rules"
	"github.com/donaldgifford/sale-prospector/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "spx-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "SPX Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 23, totalPanels)

	data, err := json.Marshal(dash)
	require.NoError(t, err)

	result := validate.DashboardJSON(data, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "spx-recording-rules", cr.Metadata.Name)
	assert.Equal(t, "sale-prospector", cr.Metadata.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "spx-recording", group.Name)

	expectedRecords := []string{
		"spx:http_requests:rate5m",
		"spx:http_errors:rate5m",
		"spx:feeds_computed:rate5m",
		"spx:actions_recorded:rate5m",
		"spx:geocode_calls:rate5m",
		"spx:geocode_failures:rate5m",
		"spx:notification_duration:p95_5m",
	}
	assert.Equal(t, expectedRecords, cr.Names())
	for _, rule := range group.Rules {
		assert.NotEmpty(t, rule.Expr)
		assert.Empty(t, rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "spx-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "spx-alerts", group.Name)

	expectedAlerts := []string{
		"SpxDown",
		"SpxReadinessDown",
		"SpxHighErrorRate",
		"SpxGeocodeFailures",
		"SpxGeocodeBackfillFailing",
		"SpxGeocodeLimitReached",
		"SpxNotificationFailures",
		"SpxUnattributedWrites",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	assert.Equal(t, expectedAlerts, cr.Names())
	for _, rule := range group.Rules {
		assert.Contains(t,
			[]string{rules.SeverityCritical, rules.SeverityWarning, rules.SeverityInfo},
			rule.Labels["severity"], "alert %s severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, false))

	dash, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "spx-overview.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(dash))

	for _, name := range []string{"spx-recording-rules.yaml", "spx-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), name)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, RulesEnabled: true}

	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
