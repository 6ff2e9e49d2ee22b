package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/v1/healthcheck", app.healthCheckHandler)

	// auth
	router.HandlerFunc(http.MethodPost, "/api/v1/auth/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/auth/login", app.loginUserHandler)

	// blog
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/create-blog", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/all-blogs", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/getBlog/:blogId", app.requireAuthUser(app.getBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/your-blogs", app.requireAuthUser(app.getYourBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/getLikedBlog", app.requireAuthUser(app.getLikedBlogsHandler))

	// comment
	router.HandlerFunc(http.MethodPost, "/api/v1/comment/create-comment/:blogId", app.requireAuthUser(app.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/comment/all-comments/:blogId", app.requireAuthUser(app.getCommentsHandler))

	// like
	router.HandlerFunc(http.MethodGet, "/api/v1/like/get-likes/:blogId", app.requireAuthUser(app.getLikeHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/like/add-like/:blogId", app.requireAuthUser(app.addLikeHandler))
	router.HandlerFunc(http.MethodDelete, "/api/v1/like/remove-like/:blogId", app.requireAuthUser(app.removeLikeHandler))

	// user
	router.HandlerFunc(http.MethodGet, "/api/v1/user/all-authors", app.requireAuthUser(app.getAllAuthorsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/user/getAuthor/:authorId", app.requireAuthUser(app.getAuthorHandler))

	return app.recoverPanic(app.rateLimit(app.enableCORS(app.logRequest(app.authenticate(router)))))
}
