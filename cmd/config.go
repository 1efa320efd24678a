package main

import "time"

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	PushQueueSize        int           `env:"PUSH_QUEUE_SIZE,default=256"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	TypingRevertDelay    time.Duration `env:"TYPING_REVERT_DELAY,default=2s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	RequireMutualFollow  bool          `env:"REQUIRE_MUTUAL_FOLLOW,default=false"`

	// Web-push credentials; when the keys are absent, notifications go
	// to the log instead of a push service.
	VAPIDPublicKey  string        `env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string        `env:"VAPID_PRIVATE_KEY"`
	VAPIDSubscriber string        `env:"VAPID_SUBSCRIBER,default=mailto:ops@localhost"`
	PushTimeout     time.Duration `env:"PUSH_TIMEOUT,default=5s"`
}
