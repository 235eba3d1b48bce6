package db

import (
	"context"
)

const getPlayerByPuuid = `
SELECT puuid, game_name, tag_line, region, last_refreshed_at
FROM players
WHERE puuid = ?
`

func (q *Queries) GetPlayerByPuuid(ctx context.Context, puuid string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByPuuid, puuid)
	var i Player
	err := row.Scan(
		&i.Puuid,
		&i.GameName,
		&i.TagLine,
		&i.Region,
		&i.LastRefreshedAt,
	)
	return i, err
}

const upsertPlayer = `
INSERT INTO players (puuid, game_name, tag_line, region, last_refreshed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(puuid) DO UPDATE SET
    game_name = excluded.game_name,
    tag_line = excluded.tag_line,
    region = excluded.region,
    last_refreshed_at = excluded.last_refreshed_at
`

type UpsertPlayerParams struct {
	Puuid           string
	GameName        string
	TagLine         string
	Region          string
	LastRefreshedAt int64
}

func (q *Queries) UpsertPlayer(ctx context.Context, arg UpsertPlayerParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayer,
		arg.Puuid,
		arg.GameName,
		arg.TagLine,
		arg.Region,
		arg.LastRefreshedAt,
	)
	return err
}

const getMatch = `
SELECT match_id, puuid, game_mode, champion_name, kills, deaths, assists, win, game_creation
FROM matches
WHERE match_id = ? AND puuid = ?
`

type GetMatchParams struct {
	MatchID string
	Puuid   string
}

func (q *Queries) GetMatch(ctx context.Context, arg GetMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, arg.MatchID, arg.Puuid)
	var i Match
	err := row.Scan(
		&i.MatchID,
		&i.Puuid,
		&i.GameMode,
		&i.ChampionName,
		&i.Kills,
		&i.Deaths,
		&i.Assists,
		&i.Win,
		&i.GameCreation,
	)
	return i, err
}

const getRecentMatchesByPuuid = `
SELECT match_id, puuid, game_mode, champion_name, kills, deaths, assists, win, game_creation
FROM matches
WHERE puuid = ?
ORDER BY game_creation DESC, match_id DESC
LIMIT ?
`

type GetRecentMatchesByPuuidParams struct {
	Puuid string
	Limit int64
}

func (q *Queries) GetRecentMatchesByPuuid(ctx context.Context, arg GetRecentMatchesByPuuidParams) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, getRecentMatchesByPuuid, arg.Puuid, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Match
	for rows.Next() {
		var i Match
		if err := rows.Scan(
			&i.MatchID,
			&i.Puuid,
			&i.GameMode,
			&i.ChampionName,
			&i.Kills,
			&i.Deaths,
			&i.Assists,
			&i.Win,
			&i.GameCreation,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertMatchIfAbsent = `
INSERT INTO matches (match_id, puuid, game_mode, champion_name, kills, deaths, assists, win, game_creation)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(match_id, puuid) DO NOTHING
`

type InsertMatchIfAbsentParams struct {
	MatchID      string
	Puuid        string
	GameMode     string
	ChampionName string
	Kills        int64
	Deaths       int64
	Assists      int64
	Win          bool
	GameCreation int64
}

// InsertMatchIfAbsent returns the number of rows written, 0 when the match was already stored.
func (q *Queries) InsertMatchIfAbsent(ctx context.Context, arg InsertMatchIfAbsentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertMatchIfAbsent,
		arg.MatchID,
		arg.Puuid,
		arg.GameMode,
		arg.ChampionName,
		arg.Kills,
		arg.Deaths,
		arg.Assists,
		arg.Win,
		arg.GameCreation,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
