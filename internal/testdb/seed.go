package testdb

import (
	"database/sql"
	"testing"
)

// Seed resets the four tables and loads the fixture dataset. Identity
// sequences restart at 1, so fixture IDs are stable across test runs.
//
// Fixture shape worth knowing in tests: article 1 belongs to topic "mitch",
// has 100 votes and three comments; article 4 has no comments at all; topic
// "paper" has no articles.
func Seed(t *testing.T, db *sql.DB) {
	t.Helper()

	statements := []string{
		`TRUNCATE topics, users, articles, comments RESTART IDENTITY CASCADE`,

		`INSERT INTO topics (slug, description, img_url) VALUES
			('mitch', 'The man, the Mitch, the legend', ''),
			('cats', 'Not dogs', ''),
			('paper', 'what books are made of', '')`,

		`INSERT INTO users (username, name, avatar_url) VALUES
			('butter_bridge', 'jonny', 'https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg'),
			('icellusedkars', 'sam', 'https://avatars2.githubusercontent.com/u/24604688?s=460&v=4'),
			('rogersop', 'paul', 'https://avatars2.githubusercontent.com/u/24394918?s=400&v=4')`,

		`INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url) VALUES
			('Living in the shadow of a great man', 'mitch', 'butter_bridge', 'I find this existence challenging', '2020-07-09 20:11:00', 100, ''),
			('Sony Vaio; or, The Laptop', 'mitch', 'icellusedkars', 'Call me Mitchell.', '2020-10-16 05:03:00', 0, ''),
			('UNCOVERED: catspiracy to bring down democracy', 'cats', 'rogersop', 'Bastet walks amongst us', '2020-08-03 13:14:00', 0, ''),
			('Moustache', 'mitch', 'butter_bridge', 'Have you seen the size of that thing?', '2020-10-11 11:24:00', 0, '')`,

		`INSERT INTO comments (article_id, body, votes, author, created_at) VALUES
			(1, 'Oh, I''ve got compassion running out of my nose, pal!', 16, 'butter_bridge', '2020-04-06 12:17:00'),
			(1, 'The beautiful thing about treasure is that it exists.', 14, 'butter_bridge', '2020-10-31 03:03:00'),
			(1, 'Replacing the quiet elegance of the dark suit', 100, 'icellusedkars', '2020-02-23 12:01:00'),
			(2, 'Fruit pastilles', 0, 'icellusedkars', '2020-06-15 10:25:00'),
			(3, 'Superficially charming', 0, 'icellusedkars', '2020-01-01 03:08:00')`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to seed test database: %v", err)
		}
	}
}
