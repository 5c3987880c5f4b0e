package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationCatalogHome = "/api.cinemadia.v1.Catalog/Home"
const OperationCatalogListMovies = "/api.cinemadia.v1.Catalog/ListMovies"
const OperationCatalogListPopular = "/api.cinemadia.v1.Catalog/ListPopular"
const OperationCatalogListRandom = "/api.cinemadia.v1.Catalog/ListRandom"
const OperationCatalogGetMovie = "/api.cinemadia.v1.Catalog/GetMovie"
const OperationCatalogListCategories = "/api.cinemadia.v1.Catalog/ListCategories"
const OperationCatalogBrowseCategory = "/api.cinemadia.v1.Catalog/BrowseCategory"
const OperationCatalogBrowseGenre = "/api.cinemadia.v1.Catalog/BrowseGenre"

type CatalogHTTPServer interface {
	Home(context.Context, *HomeRequest) (*HomeReply, error)
	ListMovies(context.Context, *ListMoviesRequest) (*ListMoviesReply, error)
	ListPopular(context.Context, *ListPopularRequest) (*ListPopularReply, error)
	ListRandom(context.Context, *ListRandomRequest) (*ListRandomReply, error)
	GetMovie(context.Context, *GetMovieRequest) (*GetMovieReply, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesReply, error)
	BrowseCategory(context.Context, *BrowseCategoryRequest) (*BrowseCategoryReply, error)
	BrowseGenre(context.Context, *BrowseGenreRequest) (*BrowseGenreReply, error)
}

func RegisterCatalogHTTPServer(s *http.Server, srv CatalogHTTPServer) {
	r := s.Route("/")
	r.GET("/api/v1/home", _Catalog_Home0_HTTP_Handler(srv))
	r.GET("/api/v1/movies", _Catalog_ListMovies0_HTTP_Handler(srv))
	r.GET("/api/v1/movies/popular", _Catalog_ListPopular0_HTTP_Handler(srv))
	r.GET("/api/v1/movies/random", _Catalog_ListRandom0_HTTP_Handler(srv))
	r.GET("/api/v1/movies/{slug}", _Catalog_GetMovie0_HTTP_Handler(srv))
	r.GET("/api/v1/categories", _Catalog_ListCategories0_HTTP_Handler(srv))
	r.GET("/api/v1/categories/{category}", _Catalog_BrowseCategory0_HTTP_Handler(srv))
	r.GET("/api/v1/genres/{genre}", _Catalog_BrowseGenre0_HTTP_Handler(srv))
}

func _Catalog_Home0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HomeRequest
		http.SetOperation(ctx, OperationCatalogHome)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Home(ctx, req.(*HomeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*HomeReply))
	}
}

func _Catalog_ListMovies0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListMoviesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCatalogListMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListMovies(ctx, req.(*ListMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListMoviesReply))
	}
}

func _Catalog_ListPopular0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListPopularRequest
		http.SetOperation(ctx, OperationCatalogListPopular)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListPopular(ctx, req.(*ListPopularRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListPopularReply))
	}
}

func _Catalog_ListRandom0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListRandomRequest
		http.SetOperation(ctx, OperationCatalogListRandom)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListRandom(ctx, req.(*ListRandomRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListRandomReply))
	}
}

func _Catalog_GetMovie0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetMovieRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCatalogGetMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovie(ctx, req.(*GetMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GetMovieReply))
	}
}

func _Catalog_ListCategories0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListCategoriesRequest
		http.SetOperation(ctx, OperationCatalogListCategories)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListCategories(ctx, req.(*ListCategoriesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListCategoriesReply))
	}
}

func _Catalog_BrowseCategory0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in BrowseCategoryRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCatalogBrowseCategory)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.BrowseCategory(ctx, req.(*BrowseCategoryRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*BrowseCategoryReply))
	}
}

func _Catalog_BrowseGenre0_HTTP_Handler(srv CatalogHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in BrowseGenreRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCatalogBrowseGenre)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.BrowseGenre(ctx, req.(*BrowseGenreRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*BrowseGenreReply))
	}
}
