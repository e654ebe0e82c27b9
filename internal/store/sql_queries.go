package store

const (
	createAccount = `INSERT INTO users (id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, name, password_hash, created_at;`

	findAccountByEmail = `SELECT id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findAccountByID = `SELECT id, email, name, password_hash, created_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (id, user_id, refresh_token, expires_at)
    VALUES ($1, $2, $3, $4);`

	findSessionByRefreshToken = `SELECT user_id
    FROM sessions
    WHERE refresh_token = $1 AND expires_at > NOW();`

	deleteSessionByRefreshToken = `DELETE FROM sessions
    WHERE refresh_token = $1;`
)
