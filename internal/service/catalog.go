package service

import (
	"context"
	"strings"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
	"cinemadia/internal/conf"
)

// CatalogService implements the public browsing API
type CatalogService struct {
	movieUC *biz.MovieUseCase
	site    string
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(site *conf.Site, movieUC *biz.MovieUseCase) *CatalogService {
	name := "Cinemadia"
	if site != nil && site.Name != "" {
		name = site.Name
	}
	return &CatalogService{
		movieUC: movieUC,
		site:    name,
	}
}

// Home implements the homepage
func (s *CatalogService) Home(ctx context.Context, req *v1.HomeRequest) (*v1.HomeReply, error) {
	home, err := s.movieUC.Home(ctx)
	if err != nil {
		return nil, err
	}

	sections := make([]*v1.CategorySection, 0, len(home.Sections))
	for _, sec := range home.Sections {
		sections = append(sections, &v1.CategorySection{
			Category: string(sec.Category),
			Label:    sec.Category.Label(),
			Movies:   moviesToReply(sec.Movies),
		})
	}

	return &v1.HomeReply{
		Site:     s.site,
		Featured: movieToReply(home.Featured),
		Sections: sections,
		Popular:  moviesToReply(home.Popular),
	}, nil
}

// ListMovies implements search; an empty query lists every movie
func (s *CatalogService) ListMovies(ctx context.Context, req *v1.ListMoviesRequest) (*v1.ListMoviesReply, error) {
	q := strings.TrimSpace(req.Q)
	list, err := s.movieUC.Search(ctx, q, biz.ParsePageNumber(req.Page))
	if err != nil {
		return nil, err
	}
	return &v1.ListMoviesReply{
		Query: q,
		Items: moviesToReply(list.Items),
		Page:  pageToReply(list.Page),
	}, nil
}

// ListPopular implements the popular list
func (s *CatalogService) ListPopular(ctx context.Context, req *v1.ListPopularRequest) (*v1.ListPopularReply, error) {
	movies, err := s.movieUC.Popular(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.ListPopularReply{Items: moviesToReply(movies)}, nil
}

// ListRandom implements the random sample
func (s *CatalogService) ListRandom(ctx context.Context, req *v1.ListRandomRequest) (*v1.ListRandomReply, error) {
	movies, err := s.movieUC.Random(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.ListRandomReply{Items: moviesToReply(movies)}, nil
}

// GetMovie implements the movie detail page
func (s *CatalogService) GetMovie(ctx context.Context, req *v1.GetMovieRequest) (*v1.GetMovieReply, error) {
	detail, err := s.movieUC.Detail(ctx, req.Slug, biz.ViewerID(ctx))
	if err != nil {
		return nil, err
	}
	return &v1.GetMovieReply{
		Movie:       movieToReply(detail.Movie),
		Related:     moviesToReply(detail.Related),
		Reviews:     reviewsToReply(detail.Reviews),
		UserVote:    voteToReply(detail.UserVote),
		IsFavorite:  detail.IsFavorite,
		InWatchlist: detail.InWatchlist,
		UserReview:  reviewToReply(detail.UserReview),
	}, nil
}

// ListCategories implements the category index
func (s *CatalogService) ListCategories(ctx context.Context, req *v1.ListCategoriesRequest) (*v1.ListCategoriesReply, error) {
	all := biz.Categories()
	items := make([]*v1.Category, 0, len(all))
	for _, c := range all {
		items = append(items, &v1.Category{Value: string(c), Label: c.Label()})
	}
	return &v1.ListCategoriesReply{Items: items}, nil
}

// BrowseCategory implements category browsing
func (s *CatalogService) BrowseCategory(ctx context.Context, req *v1.BrowseCategoryRequest) (*v1.BrowseCategoryReply, error) {
	category, list, err := s.movieUC.ListByCategory(ctx, req.Category, biz.ParsePageNumber(req.Page))
	if err != nil {
		return nil, err
	}
	return &v1.BrowseCategoryReply{
		Category: string(category),
		Label:    category.Label(),
		Items:    moviesToReply(list.Items),
		Page:     pageToReply(list.Page),
	}, nil
}

// BrowseGenre implements genre browsing
func (s *CatalogService) BrowseGenre(ctx context.Context, req *v1.BrowseGenreRequest) (*v1.BrowseGenreReply, error) {
	list, err := s.movieUC.ListByGenre(ctx, req.Genre, biz.ParsePageNumber(req.Page))
	if err != nil {
		return nil, err
	}
	return &v1.BrowseGenreReply{
		Genre: req.Genre,
		Items: moviesToReply(list.Items),
		Page:  pageToReply(list.Page),
	}, nil
}
