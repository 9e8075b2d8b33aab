package local

import "github.com/ykigathi/click-movie-studios-sub000/internal/catalog"

// genreVocabulary returns the bundled tag vocabulary. IDs match the
// remote API's, so cached filter payloads stay meaningful if the user
// later configures a credential.
func genreVocabulary() []catalog.Genre {
	return []catalog.Genre{
		{ID: 28, Name: "Action"},
		{ID: 12, Name: "Adventure"},
		{ID: 35, Name: "Comedy"},
		{ID: 80, Name: "Crime"},
		{ID: 18, Name: "Drama"},
		{ID: 10749, Name: "Romance"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 53, Name: "Thriller"},
	}
}

// dataset returns the bundled movies in trending order. Each entry
// carries the detail-only fields too, so GetDetail can serve the full
// shape without a second source.
func dataset() []catalog.Movie {
	return []catalog.Movie{
		{
			ID:          27205,
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			PosterPath:  "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
			VoteAverage: 8.4,
			VoteCount:   34562,
			ReleaseDate: "2010-07-16",
			Genres:      []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
			Runtime:     148,
			Budget:      160000000,
			Revenue:     825532764,
			Tagline:     "Your mind is the scene of the crime.",
			Cast: []catalog.CastMember{
				{Name: "Leonardo DiCaprio", Character: "Dom Cobb"},
				{Name: "Joseph Gordon-Levitt", Character: "Arthur"},
				{Name: "Elliot Page", Character: "Ariadne"},
			},
			Crew: []catalog.CrewMember{{Name: "Christopher Nolan", Job: "Director"}},
		},
		{
			ID:          603,
			Title:       "The Matrix",
			Overview:    "A computer hacker learns that reality as he knows it is a simulation, and joins a rebellion to free humanity.",
			PosterPath:  "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			VoteAverage: 8.2,
			VoteCount:   24011,
			ReleaseDate: "1999-03-31",
			Genres:      []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
			Runtime:     136,
			Budget:      63000000,
			Revenue:     463517383,
			Tagline:     "The fight for the future begins.",
			Cast: []catalog.CastMember{
				{Name: "Keanu Reeves", Character: "Neo"},
				{Name: "Laurence Fishburne", Character: "Morpheus"},
				{Name: "Carrie-Anne Moss", Character: "Trinity"},
			},
			Crew: []catalog.CrewMember{
				{Name: "Lana Wachowski", Job: "Director"},
				{Name: "Lilly Wachowski", Job: "Director"},
			},
		},
		{
			ID:          680,
			Title:       "Pulp Fiction",
			Overview:    "The lives of two mob hitmen, a boxer, a gangster's wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			PosterPath:  "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
			VoteAverage: 8.5,
			VoteCount:   26145,
			ReleaseDate: "1994-09-10",
			Genres:      []catalog.Genre{{ID: 80, Name: "Crime"}, {ID: 53, Name: "Thriller"}},
			Runtime:     154,
			Budget:      8000000,
			Revenue:     213928762,
			Tagline:     "Just because you are a character doesn't mean you have character.",
			Cast: []catalog.CastMember{
				{Name: "John Travolta", Character: "Vincent Vega"},
				{Name: "Samuel L. Jackson", Character: "Jules Winnfield"},
				{Name: "Uma Thurman", Character: "Mia Wallace"},
			},
			Crew: []catalog.CrewMember{{Name: "Quentin Tarantino", Job: "Director"}},
		},
		{
			ID:          278,
			Title:       "The Shawshank Redemption",
			Overview:    "Imprisoned in the 1940s for the double murder of his wife and her lover, an upstanding banker begins a decades-long friendship with a fellow inmate.",
			PosterPath:  "/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
			VoteAverage: 8.7,
			VoteCount:   25432,
			ReleaseDate: "1994-09-23",
			Genres:      []catalog.Genre{{ID: 18, Name: "Drama"}, {ID: 80, Name: "Crime"}},
			Runtime:     142,
			Budget:      25000000,
			Revenue:     28341469,
			Tagline:     "Fear can hold you prisoner. Hope can set you free.",
			Cast: []catalog.CastMember{
				{Name: "Tim Robbins", Character: "Andy Dufresne"},
				{Name: "Morgan Freeman", Character: "Ellis Boyd 'Red' Redding"},
			},
			Crew: []catalog.CrewMember{{Name: "Frank Darabont", Job: "Director"}},
		},
		{
			ID:          550,
			Title:       "Fight Club",
			Overview:    "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy.",
			PosterPath:  "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
			VoteAverage: 8.4,
			VoteCount:   27280,
			ReleaseDate: "1999-10-15",
			Genres:      []catalog.Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
			Runtime:     139,
			Budget:      63000000,
			Revenue:     100853753,
			Tagline:     "Mischief. Mayhem. Soap.",
			Cast: []catalog.CastMember{
				{Name: "Brad Pitt", Character: "Tyler Durden"},
				{Name: "Edward Norton", Character: "The Narrator"},
			},
			Crew: []catalog.CrewMember{{Name: "David Fincher", Job: "Director"}},
		},
		{
			ID:          13,
			Title:       "Forrest Gump",
			Overview:    "A man with a low IQ accomplishes great things in his life and is present during significant historic events, still pining for his childhood sweetheart.",
			PosterPath:  "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
			VoteAverage: 8.5,
			VoteCount:   26100,
			ReleaseDate: "1994-06-23",
			Genres:      []catalog.Genre{{ID: 35, Name: "Comedy"}, {ID: 18, Name: "Drama"}, {ID: 10749, Name: "Romance"}},
			Runtime:     142,
			Budget:      55000000,
			Revenue:     677387716,
			Tagline:     "Life is like a box of chocolates... you never know what you're gonna get.",
			Cast: []catalog.CastMember{
				{Name: "Tom Hanks", Character: "Forrest Gump"},
				{Name: "Robin Wright", Character: "Jenny Curran"},
			},
			Crew: []catalog.CrewMember{{Name: "Robert Zemeckis", Job: "Director"}},
		},
		{
			ID:          155,
			Title:       "The Dark Knight",
			Overview:    "Batman raises the stakes in his war on crime, but soon finds himself prey to a reign of chaos unleashed by a rising criminal mastermind known as the Joker.",
			PosterPath:  "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
			VoteAverage: 8.5,
			VoteCount:   31000,
			ReleaseDate: "2008-07-16",
			Genres:      []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 80, Name: "Crime"}, {ID: 18, Name: "Drama"}},
			Runtime:     152,
			Budget:      185000000,
			Revenue:     1004558444,
			Tagline:     "Welcome to a world without rules.",
			Cast: []catalog.CastMember{
				{Name: "Christian Bale", Character: "Bruce Wayne"},
				{Name: "Heath Ledger", Character: "Joker"},
			},
			Crew: []catalog.CrewMember{{Name: "Christopher Nolan", Job: "Director"}},
		},
		{
			ID:          122,
			Title:       "The Lord of the Rings: The Return of the King",
			Overview:    "As armies mass for a final battle that will decide the fate of the world, Frodo and Sam struggle onward to the heart of Mordor to destroy the One Ring.",
			PosterPath:  "/rCzpDGLbOoPwLjy3OAm5NUPOTrC.jpg",
			VoteAverage: 8.5,
			VoteCount:   22000,
			ReleaseDate: "2003-12-01",
			Genres:      []catalog.Genre{{ID: 12, Name: "Adventure"}, {ID: 28, Name: "Action"}},
			Runtime:     201,
			Budget:      94000000,
			Revenue:     1118888979,
			Tagline:     "The eye of the enemy is moving.",
			Cast: []catalog.CastMember{
				{Name: "Elijah Wood", Character: "Frodo Baggins"},
				{Name: "Viggo Mortensen", Character: "Aragorn"},
			},
			Crew: []catalog.CrewMember{{Name: "Peter Jackson", Job: "Director"}},
		},
		{
			ID:          157336,
			Title:       "Interstellar",
			Overview:    "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer interstellar distances.",
			PosterPath:  "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			VoteAverage: 8.4,
			VoteCount:   33000,
			ReleaseDate: "2014-11-05",
			Genres:      []catalog.Genre{{ID: 12, Name: "Adventure"}, {ID: 18, Name: "Drama"}, {ID: 878, Name: "Science Fiction"}},
			Runtime:     169,
			Budget:      165000000,
			Revenue:     701729206,
			Tagline:     "Mankind was born on Earth. It was never meant to die here.",
			Cast: []catalog.CastMember{
				{Name: "Matthew McConaughey", Character: "Cooper"},
				{Name: "Anne Hathaway", Character: "Brand"},
			},
			Crew: []catalog.CrewMember{{Name: "Christopher Nolan", Job: "Director"}},
		},
		{
			ID:          496243,
			Title:       "Parasite",
			Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks, until they get entangled in an unexpected incident.",
			PosterPath:  "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
			VoteAverage: 8.5,
			VoteCount:   17000,
			ReleaseDate: "2019-05-30",
			Genres:      []catalog.Genre{{ID: 35, Name: "Comedy"}, {ID: 53, Name: "Thriller"}, {ID: 18, Name: "Drama"}},
			Runtime:     132,
			Budget:      11400000,
			Revenue:     257591776,
			Tagline:     "Act like you own the place.",
			Cast: []catalog.CastMember{
				{Name: "Song Kang-ho", Character: "Ki-taek"},
				{Name: "Choi Woo-shik", Character: "Ki-woo"},
			},
			Crew: []catalog.CrewMember{{Name: "Bong Joon-ho", Job: "Director"}},
		},
		{
			ID:          11216,
			Title:       "Cinema Paradiso",
			Overview:    "A filmmaker recalls his childhood when falling in love with the pictures at the cinema of his home village and forms a deep friendship with the cinema's projectionist.",
			PosterPath:  "/8SRUfRUi6x4O68n0VCbDNRa6iGL.jpg",
			VoteAverage: 8.4,
			VoteCount:   4100,
			ReleaseDate: "1988-11-17",
			Genres:      []catalog.Genre{{ID: 18, Name: "Drama"}, {ID: 10749, Name: "Romance"}},
			Runtime:     124,
			Budget:      5000000,
			Revenue:     11990401,
			Tagline:     "A celebration of youth, friendship, and the everlasting magic of the movies.",
			Cast: []catalog.CastMember{
				{Name: "Philippe Noiret", Character: "Alfredo"},
				{Name: "Salvatore Cascio", Character: "Salvatore (child)"},
			},
			Crew: []catalog.CrewMember{{Name: "Giuseppe Tornatore", Job: "Director"}},
		},
		{
			ID:          324857,
			Title:       "Spider-Man: Into the Spider-Verse",
			Overview:    "Miles Morales is juggling his life between being a high school student and being a spider-man, when Wilson Fisk uses a super collider and another Spider-Man from another dimension appears.",
			PosterPath:  "/iiZZdoQBEYBv6id8su7ImL0oCbD.jpg",
			VoteAverage: 8.4,
			VoteCount:   15000,
			ReleaseDate: "2018-12-06",
			Genres:      []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 12, Name: "Adventure"}},
			Runtime:     117,
			Budget:      90000000,
			Revenue:     375540831,
			Tagline:     "More than one wears the mask.",
			Cast: []catalog.CastMember{
				{Name: "Shameik Moore", Character: "Miles Morales"},
				{Name: "Jake Johnson", Character: "Peter B. Parker"},
			},
			Crew: []catalog.CrewMember{
				{Name: "Bob Persichetti", Job: "Director"},
				{Name: "Peter Ramsey", Job: "Director"},
			},
		},
	}
}
