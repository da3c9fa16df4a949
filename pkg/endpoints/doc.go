// Package endpoints is a thin client for the Endpoints document extraction and
// storage REST API.
//
// # Overview
//
// An endpoint is a logical bucket of extracted records addressed by a
// hierarchical path such as "/job-tracker/january-2026". The API lets callers
// list, create, inspect, append to, scan into (AI extraction) and delete
// endpoints, resolve stored files to presigned URLs, and read billing stats.
//
// Every method issues one authenticated request (DownloadFile issues two) and
// returns the decoded response unchanged. Nothing is retried or cached.
//
// # Usage
//
//	client, err := endpoints.NewClient(&endpoints.Config{
//	  BaseURL: "https://endpoints.example.com",
//	  APIKey:  os.Getenv("ENDPOINTS_API_KEY"),
//	})
//	if err != nil {
//	  return err
//	}
//	details, err := client.GetEndpoint(ctx, "/job-tracker/january-2026")
//
// # API Endpoints Used
//
//   - GET    /api/endpoints/tree
//   - GET    /api/endpoints/:path
//   - POST   /api/endpoints
//   - PATCH  /api/endpoints/:path
//   - DELETE /api/endpoints/:path
//   - DELETE /api/items/:id?path=:path
//   - GET    /api/files/:key?format=json[&expiresIn=N]
//   - POST   /api/scan (multipart)
//   - GET    /api/billing/stats
//
// # Error Handling
//
// A response outside 2xx is returned as *HTTPError whose message is
// "HTTP {status}: {body}" with the raw body text. Transport errors are returned
// unchanged. A success body that is not valid JSON produces a decode error.
//
// # Security
//
//   - Bearer token authentication on every API request
//   - The API key is never logged
//   - Presigned download URLs are fetched without the API key
package endpoints
