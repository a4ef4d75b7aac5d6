package statsapi

// Response shapes of the league stats APIs. Nested objects are pointers so a missing
// object can be told apart from an empty one.

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   *int64           `json:"gamePk"`
	GameDate string           `json:"gameDate"`
	Teams    *teamsResponse   `json:"teams"`
	Status   *statusResponse  `json:"status"`
	Content  *contentResponse `json:"content"`
}

type teamsResponse struct {
	Home *sideResponse `json:"home"`
	Away *sideResponse `json:"away"`
}

type sideResponse struct {
	Team *teamResponse `json:"team"`
}

type teamResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type statusResponse struct {
	DetailedState string `json:"detailedState"`
}

type contentResponse struct {
	Media *mediaResponse `json:"media"`
}

type mediaResponse struct {
	EPG []epgResponse `json:"epg"`
}

type epgResponse struct {
	Title string        `json:"title"`
	Items []epgItemResp `json:"items"`
}

type epgItemResp struct {
	ID              string `json:"id"`
	MediaPlaybackID string `json:"mediaPlaybackId"`
	MediaFeedType   string `json:"mediaFeedType"`
	CallLetters     string `json:"callLetters"`
}
