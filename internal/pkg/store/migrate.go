package store

import "context"

// migrations are idempotent. References stay plain text columns: the
// in-memory backend cannot enforce them either, and the two backends
// must behave the same.
var migrations = []string{
	`create table if not exists users (
		id text primary key,
		username text not null unique,
		password_hash text not null,
		phone text,
		location text,
		language text not null default 'english',
		created_at timestamptz not null default now()
	)`,
	`create table if not exists crops (
		id text primary key,
		name text not null,
		name_hindi text,
		name_telugu text,
		category text not null,
		current_price double precision,
		unit text not null default 'quintal'
	)`,
	`create table if not exists disease_detections (
		id text primary key,
		user_id text not null,
		crop_id text,
		image_url text not null,
		detected_disease text,
		confidence double precision,
		treatment text,
		detected_at timestamptz not null default now()
	)`,
	`create table if not exists listings (
		id text primary key,
		user_id text not null,
		crop_id text,
		quantity double precision not null,
		price_per_unit double precision not null,
		location text not null,
		description text,
		is_active boolean not null default true,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists market_prices (
		id text primary key,
		crop_id text,
		price double precision not null,
		price_change double precision,
		market text not null,
		date timestamptz not null default now()
	)`,
	`create table if not exists weather_alerts (
		id text primary key,
		location text not null,
		alert_type text not null,
		severity text not null,
		message text not null,
		message_hindi text,
		message_telugu text,
		valid_until timestamptz,
		created_at timestamptz not null default now()
	)`,
	`create index if not exists idx_detections_user on disease_detections (user_id, detected_at desc)`,
	`create index if not exists idx_listings_user on listings (user_id, created_at desc)`,
	`create index if not exists idx_prices_crop on market_prices (crop_id, date desc)`,
	`create index if not exists idx_alerts_location on weather_alerts (location, created_at desc)`,
}

func (s *pgStore) migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := s.pool.Exec(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
