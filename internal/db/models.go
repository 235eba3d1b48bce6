package db

type Player struct {
	Puuid           string
	GameName        string
	TagLine         string
	Region          string
	LastRefreshedAt int64
}

type Match struct {
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
