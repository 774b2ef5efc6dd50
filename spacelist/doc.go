// Package spacelist provides a client for the SpaceList bot listing API.
//
// Every operation is a single HTTP round trip: arguments are validated
// synchronously, one request is issued, and the JSON body is decoded into
// a typed entity. There is no retry, caching, or rate limiting in this
// layer.
//
// # Architecture
//
//   - Client: the API facade, one method per endpoint
//   - Types: entities the API returns (bots, users, upvotes, statistics)
//   - API: interface definition for testability
//   - Errors: validation sentinels and structured API errors
//
// Paginated listings are returned as collection.Page values, an
// insertion-ordered map of the page's items plus page/limit/total
// metadata.
//
// # Usage
//
// Create a client with the bot's ID and token:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := spacelist.NewClient(spacelist.Config{
//		BotID:    "228537642583588864",
//		BotToken: "your-bot-token",
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	bots, err := client.GetBots(ctx, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, bot := range bots.Values() {
//		fmt.Println(bot.Tag())
//	}
//
// # Error Handling
//
// Validation failures (bad page number, empty ID, missing token) are
// returned before any request is issued and wrap one of the package's
// sentinel errors. Non-2xx responses are returned as *APIError with the
// status code and the API's message:
//
//	var apiErr *spacelist.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// bot is not listed
//	}
package spacelist
