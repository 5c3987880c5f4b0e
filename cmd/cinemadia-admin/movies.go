package main

import (
	"context"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// movieEnsurer creates a movie unless one with the same title exists.
type movieEnsurer interface {
	EnsureMovie(ctx context.Context, req *biz.CreateMovieRequest) (*biz.Movie, bool, error)
}

// seedMovies inserts sampleMovies and returns how many were new.
func seedMovies(ctx context.Context, movies movieEnsurer, log *log.Helper) (int, error) {
	created := 0
	for _, req := range sampleMovies() {
		m, isNew, err := movies.EnsureMovie(ctx, req)
		if err != nil {
			return created, err
		}
		if !isNew {
			log.Infof("- %q already exists", m.Title)
			continue
		}
		created++
		log.Infof("+ %q added as %s", m.Title, m.Slug)
	}
	return created, nil
}

// importTitles creates one movie per title, filled from the external
// catalog. Failures are logged and skipped.
func importTitles(ctx context.Context, movies movieEnsurer, titles []string, log *log.Helper) int {
	created := 0
	for _, title := range titles {
		m, isNew, err := movies.EnsureMovie(ctx, &biz.CreateMovieRequest{Title: title})
		if err != nil {
			log.Warnf("import of %q failed: %v", title, err)
			continue
		}
		if !isNew {
			log.Infof("- %q already exists", m.Title)
			continue
		}
		created++
		log.Infof("+ %q imported as %s", m.Title, m.Slug)
	}
	return created
}

func sampleMovies() []*biz.CreateMovieRequest {
	return []*biz.CreateMovieRequest{
		{
			Title:       "Oppenheimer",
			Description: "J. Robert Oppenheimer hayoti va atom bombasini yaratish jarayoni haqida film.",
			Year:        2023,
			Genre:       "Drama, Tarixiy",
			Director:    "Christopher Nolan",
			Actors:      "Cillian Murphy, Emily Blunt, Matt Damon",
			Duration:    "3 soat",
			Rating:      8.5,
			PosterURL:   "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=uYPbbksJxIg",
			IsFeatured:  true,
			Category:    biz.CategoryPremyera,
		},
		{
			Title:       "Barbie",
			Description: "Barbie o'zining mukammal dunyosidan chiqib, haqiqiy dunyoni kashf etadi.",
			Year:        2023,
			Genre:       "Komediya, Fantastika",
			Director:    "Greta Gerwig",
			Actors:      "Margot Robbie, Ryan Gosling, Will Ferrell",
			Duration:    "1 soat 54 daqiqa",
			Rating:      7.2,
			PosterURL:   "https://image.tmdb.org/t/p/w500/iuFNMS8U5cb6xfzi51Dbkovj7vM.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=pBk4NYhWNMM",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "The Batman",
			Description: "Yosh Batman Gotham shahridagi korrupsiya va jinoyatchilarni fosh etishga harakat qiladi.",
			Year:        2022,
			Genre:       "Action, Thriller",
			Director:    "Matt Reeves",
			Actors:      "Robert Pattinson, Zoë Kravitz, Paul Dano",
			Duration:    "2 soat 56 daqiqa",
			Rating:      7.8,
			PosterURL:   "https://image.tmdb.org/t/p/w500/74xTEgt7R36Fpooo50r9T25onhq.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=mqqft2x_Aa4",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "Avatar: The Way of Water",
			Description: "Jake Sully va Neytiri o'z oilalari bilan Pandora okeanlarida yangi sarguzashtlarga kirishadilar.",
			Year:        2022,
			Genre:       "Sci-Fi, Fantastika",
			Director:    "James Cameron",
			Actors:      "Sam Worthington, Zoe Saldana, Sigourney Weaver",
			Duration:    "3 soat 12 daqiqa",
			Rating:      7.6,
			PosterURL:   "https://image.tmdb.org/t/p/w500/t6HIqrRAclMCA60NsSmeqe9RmNV.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=d9MyW72ELq0",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "Spider-Man: Across the Spider-Verse",
			Description: "Miles Morales multiverse bo'ylab sarguzashtlarga kirishadi.",
			Year:        2023,
			Genre:       "Animatsiya, Action",
			Director:    "Joaquim Dos Santos",
			Actors:      "Shameik Moore, Hailee Steinfeld, Oscar Isaac",
			Duration:    "2 soat 20 daqiqa",
			Rating:      8.7,
			PosterURL:   "https://image.tmdb.org/t/p/w500/8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=cqGjhVJWtEg",
			Category:    biz.CategoryMultfilm,
		},
		{
			Title:       "Guardians of the Galaxy Vol. 3",
			Description: "Qo'riqchilar Star-Lord va Rocket Raccoon'ni qutqarish uchun oxirgi missiyaga chiqadilar.",
			Year:        2023,
			Genre:       "Action, Komediya",
			Director:    "James Gunn",
			Actors:      "Chris Pratt, Zoe Saldana, Dave Bautista",
			Duration:    "2 soat 30 daqiqa",
			Rating:      8.0,
			PosterURL:   "https://image.tmdb.org/t/p/w500/r2J02Z2OpNTctfOSN1Ydgii51I3.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=u3V5KDHRQvk",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "John Wick: Chapter 4",
			Description: "John Wick butun dunyo bo'ylab o'z dushmanlari bilan kurashadi.",
			Year:        2023,
			Genre:       "Action, Thriller",
			Director:    "Chad Stahelski",
			Actors:      "Keanu Reeves, Donnie Yen, Bill Skarsgård",
			Duration:    "2 soat 49 daqiqa",
			Rating:      8.1,
			PosterURL:   "https://image.tmdb.org/t/p/w500/vZloFAK7NmvMGKE7VkF5UHaz0I.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=qEVUtrk8_B4",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "Top Gun: Maverick",
			Description: "Pete \"Maverick\" Mitchell yangi avlod uchuvchilarini o'rgatadi.",
			Year:        2022,
			Genre:       "Action, Drama",
			Director:    "Joseph Kosinski",
			Actors:      "Tom Cruise, Jennifer Connelly, Miles Teller",
			Duration:    "2 soat 10 daqiqa",
			Rating:      8.3,
			PosterURL:   "https://image.tmdb.org/t/p/w500/62HCnUTziyWcpDaBO2i1DX17ljH.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=giXco2jaZ_4",
			Category:    biz.CategoryTarjimaKino,
		},
		{
			Title:       "Dangal",
			Description: "Hindistonlik qizlar uchun kurash sportini rivojlantirishga qaratilgan ilham beruvchi hikoya.",
			Year:        2016,
			Genre:       "Drama, Sport",
			Director:    "Nitesh Tiwari",
			Actors:      "Aamir Khan, Fatima Sana Shaikh, Sanya Malhotra",
			Duration:    "2 soat 41 daqiqa",
			Rating:      8.4,
			PosterURL:   "https://image.tmdb.org/t/p/w500/4S4YvEjgN7iKdWxaGm7V8qFObMy.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=x_7YlGv9u1g",
			Category:    biz.CategoryHind,
		},
		{
			Title:       "Frozen 2",
			Description: "Elsa va Anna sirlar bilan to'la yangi sarguzashtlarga kirishadilar.",
			Year:        2019,
			Genre:       "Animatsiya, Musiqiy",
			Director:    "Chris Buck",
			Actors:      "Kristen Bell, Idina Menzel, Josh Gad",
			Duration:    "1 soat 43 daqiqa",
			Rating:      7.0,
			PosterURL:   "https://image.tmdb.org/t/p/w500/mINJaaTj8XjC7x2f0HxSbpk3w2t.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=Zi4LMpSDccc",
			Category:    biz.CategoryMultfilm,
		},
		{
			Title:       "Stranger Things",
			Description: "Hawkins shahridagi bolalar g'ayritabiiy hodisalarni tekshiradilar.",
			Year:        2016,
			Genre:       "Sci-Fi, Qo'rqinchli",
			Director:    "Matt Duffer",
			Actors:      "Millie Bobby Brown, Finn Wolfhard, Winona Ryder",
			Duration:    "Serial",
			Rating:      8.7,
			PosterURL:   "https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=b9EkMc79ZSU",
			Category:    biz.CategorySerial,
		},
	}
}
