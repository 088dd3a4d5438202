// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging and the language model.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with optional retries and request logging
// - logger/logrus: Structured logger on logrus with optional file rotation
// - llm/gemini: Gemini text generation for the analysis service
//
// # HTTP Client
//
// Feed fetches make a single attempt; retries are opt-in:
//
//	client := standard.NewStandardHTTPClient(15*time.Second,
//	    standard.WithAttempts(1),
//	    standard.WithLogger(logger),
//	)
//	resp, err := client.Get(ctx, "https://example.fr/feed")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Ranking completed", map[string]interface{}{
//	    "keyword":  "développeur web",
//	    "returned": 5,
//	})
//
// # Gemini
//
//	gen, err := gemini.NewGenerator(ctx, apiKey, "gemini-2.5-flash", gemini.WithTimeout(time.Minute))
//	svc := analysis.NewService(deps, gen)
package infrastructure
