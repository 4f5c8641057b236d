package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalStores = `
stores:
  main:
    seller_id: A1EXAMPLE
    marketplace_id: ATVPDKIKX0DER
    access_key_id: AKIAEXAMPLE
    secret_key: secret
`

const minimalDatabase = `
database:
  host: localhost
  name: mws
  user: mws
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalStores + minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "main", cfg.DefaultStore)
				assert.Equal(t, "A1EXAMPLE", cfg.Stores["main"].SellerID)
				assert.Equal(t, "localhost", cfg.Database.Host)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalStores + minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 5, cfg.Throttle.MaxRetries)
				assert.False(t, cfg.Throttle.Stop)
				assert.Equal(t, "testdata", cfg.Mock.Dir)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 15*time.Minute, cfg.Sync.OrderInterval)
				assert.Equal(t, 72*time.Hour, cfg.Sync.Lookback)
				assert.Equal(t, time.Hour, cfg.Sync.ReportInterval)
				assert.Equal(t, 50, cfg.Sync.MaxPages)
				assert.Equal(t, "us-east-1", cfg.Archive.Region)
				assert.Equal(t, "reports/", cfg.Archive.Prefix)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "mws-sync", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRate, 0.0001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
stores:
  main:
    seller_id: A1EXAMPLE
    access_key_id: AKIAEXAMPLE
    secret_key: "${TEST_MWS_SECRET}"
` + minimalDatabase,
			envVars: map[string]string{
				"TEST_MWS_SECRET": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Stores["main"].SecretKey)
			},
		},
		{
			name:    "no stores",
			yaml:    minimalDatabase,
			wantErr: "at least one store is required",
		},
		{
			name: "store missing secret",
			yaml: `
stores:
  main:
    seller_id: A1EXAMPLE
    access_key_id: AKIAEXAMPLE
` + minimalDatabase,
			wantErr: "stores.main.secret_key is required",
		},
		{
			name: "several stores need a default",
			yaml: minimalStores + `
  eu:
    seller_id: A2EXAMPLE
    access_key_id: AKIAEU
    secret_key: secret
` + minimalDatabase,
			wantErr: "default_store is required",
		},
		{
			name:    "unknown default store",
			yaml:    minimalStores + "default_store: other\n" + minimalDatabase,
			wantErr: `default_store "other" is not a configured store`,
		},
		{
			name:    "missing required database.host",
			yaml:    minimalStores + "database:\n  name: mws\n  user: mws\n",
			wantErr: "database.host is required",
		},
		{
			name:    "archive without bucket",
			yaml:    minimalStores + minimalDatabase + "archive:\n  enabled: true\n",
			wantErr: "archive.bucket is required",
		},
		{
			name: "report types without archive",
			yaml: minimalStores + minimalDatabase + `
sync:
  report_types: [_GET_FLAT_FILE_ORDERS_DATA_]
`,
			wantErr: "sync.report_types requires archive.enabled",
		},
		{
			name:    "discord without webhook",
			yaml:    minimalStores + minimalDatabase + "notifications:\n  discord:\n    enabled: true\n",
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "bad throttle override",
			yaml: minimalStores + minimalDatabase + `
throttle:
  groups:
    ListOrders:
      max_quota: 0
`,
			wantErr: "throttle.groups.ListOrders needs a positive max_quota",
		},
		{
			name:    "unknown log format",
			yaml:    minimalStores + minimalDatabase + "logging:\n  format: xml\n",
			wantErr: `logging.format must be one of: text, json, logfmt (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
stores:
  us:
    seller_id: A1EXAMPLE
    marketplace_id: ATVPDKIKX0DER
    access_key_id: AKIAUS
    secret_key: secret
  uk:
    seller_id: A1EXAMPLE
    marketplace_id: A1F83G8C2ARO7P
    access_key_id: AKIAUK
    secret_key: secret
    auth_token: amzn.mws.token
default_store: uk
throttle:
  max_retries: 2
  stop: true
  groups:
    ListOrders:
      max_quota: 3
      restore_every: 2m
mock:
  enabled: true
  dir: fixtures
  entries: [list_orders, "503"]
server:
  host: "127.0.0.1"
  port: 9090
database:
  host: db.example.com
  port: 5433
  name: mws_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
sync:
  order_interval: 5m
  lookback: 24h
  fetch_items: true
  order_statuses: [Unshipped, Shipped]
  report_types: [_GET_FLAT_FILE_ORDERS_DATA_]
  acknowledge: true
archive:
  enabled: true
  bucket: mws-reports
  endpoint: http://minio:9000
  use_path_style: true
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
telemetry:
  enabled: true
  endpoint: otel:4317
  sample_rate: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "uk", cfg.DefaultStore)
				assert.Equal(t, "amzn.mws.token", cfg.Stores["uk"].AuthToken)
				assert.Equal(t, 2, cfg.Throttle.MaxRetries)
				assert.True(t, cfg.Throttle.Stop)
				assert.Equal(t, 2*time.Minute, cfg.Throttle.Groups["ListOrders"].RestoreEvery)
				assert.True(t, cfg.Mock.Enabled)
				assert.Equal(t, "fixtures", cfg.Mock.Dir)
				assert.Equal(t, []string{"list_orders", "503"}, cfg.Mock.Entries)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, 5*time.Minute, cfg.Sync.OrderInterval)
				assert.True(t, cfg.Sync.FetchItems)
				assert.Equal(t, []string{"Unshipped", "Shipped"}, cfg.Sync.OrderStatuses)
				assert.True(t, cfg.Sync.Acknowledge)
				assert.Equal(t, "mws-reports", cfg.Archive.Bucket)
				assert.True(t, cfg.Archive.UsePathStyle)
				assert.Equal(t, "otel:4317", cfg.Telemetry.Endpoint)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRate, 0.0001)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfig_Store(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(minimalStores + minimalDatabase))
	require.NoError(t, err)

	s, err := cfg.Store("")
	require.NoError(t, err)
	assert.Equal(t, "A1EXAMPLE", s.SellerID)

	creds := s.Credentials()
	assert.Equal(t, "ATVPDKIKX0DER", creds.MarketplaceID)
	assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)

	_, err = cfg.Store("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `store "missing" is not configured`)
}

func TestThrottleConfig_NewThrottle(t *testing.T) {
	t.Parallel()

	tc := ThrottleConfig{Groups: map[string]GroupOverride{
		"ListOrders": {MaxQuota: 2, RestoreEvery: 90 * time.Second},
	}}
	th := tc.NewThrottle()

	assert.Equal(t, 90*time.Second, th.RestoreInterval("ListOrders"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "mws",
				User:     "mws",
				Password: "testpass",
				SSLMode:  "disable",
				PoolSize: 10,
			},
			want: "host=localhost port=5432 dbname=mws user=mws password=testpass " +
				"sslmode=disable pool_max_conns=10",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "mws_prod",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
				PoolSize: 20,
			},
			want: "host=db.example.com port=5433 dbname=mws_prod user=admin password=s3cret " +
				"sslmode=require pool_max_conns=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
