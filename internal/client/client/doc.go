// Package client talks to the myFlix HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// net/http. Each method maps to one endpoint:
//
//	Register        POST   /users
//	Login           POST   /login
//	ListMovies      GET    /movies
//	GetMovie        GET    /movies/{title}
//	GetDirector     GET    /movies/director/{name}
//	GetGenre        GET    /movies/genre/{name}
//	AddFavorite     POST   /users/{username}/movies/{movieID}
//	RemoveFavorite  DELETE /users/{username}/movies/{movieID}
//	UpdateProfile   PUT    /users/{username}
//	DeleteAccount   DELETE /users/{id}
//
// GetFavorites never touches the network: it answers from the cached user.
//
// # Session
//
// The bearer token is read from the SessionStore on every call. With no
// token the request goes out without an Authorization header and the server
// decides. Favorite changes are mirrored into the store only after the
// server acknowledged them.
//
// # Error Handling
//
// Every failure is an *APIError carrying a display message and a Kind.
// Match kinds with errors.Is against ErrValidation, ErrUnauthorized,
// ErrUnavailable and ErrServer. Status codes and raw bodies are logged,
// never put in the message.
package client
