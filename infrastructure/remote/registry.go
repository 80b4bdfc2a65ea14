package remote

import (
	"fmt"
	"net/http"

	"webdrill/domain/entities"

	"golang.org/x/exp/slices"
)

type route struct {
	method string
	path   string
}

// commands is the JSON wire protocol command table. Paths must match the
// published table byte for byte; servers route on the exact strings.
var commands = map[entities.Command]route{
	entities.Status:                                 {http.MethodGet, "/status"},
	entities.NewSession:                             {http.MethodPost, "/session"},
	entities.GetAllSessions:                         {http.MethodGet, "/sessions"},
	entities.Quit:                                   {http.MethodDelete, "/session/$sessionId"},
	entities.GetCurrentWindowHandle:                 {http.MethodGet, "/session/$sessionId/window_handle"},
	entities.W3CGetCurrentWindowHandle:              {http.MethodGet, "/session/$sessionId/window"},
	entities.GetWindowHandles:                       {http.MethodGet, "/session/$sessionId/window_handles"},
	entities.W3CGetWindowHandles:                    {http.MethodGet, "/session/$sessionId/window/handles"},
	entities.Get:                                    {http.MethodPost, "/session/$sessionId/url"},
	entities.GoForward:                              {http.MethodPost, "/session/$sessionId/forward"},
	entities.GoBack:                                 {http.MethodPost, "/session/$sessionId/back"},
	entities.Refresh:                                {http.MethodPost, "/session/$sessionId/refresh"},
	entities.ExecuteScript:                          {http.MethodPost, "/session/$sessionId/execute"},
	entities.W3CExecuteScript:                       {http.MethodPost, "/session/$sessionId/execute/sync"},
	entities.W3CExecuteScriptAsync:                  {http.MethodPost, "/session/$sessionId/execute/async"},
	entities.GetCurrentURL:                          {http.MethodGet, "/session/$sessionId/url"},
	entities.GetTitle:                               {http.MethodGet, "/session/$sessionId/title"},
	entities.GetPageSource:                          {http.MethodGet, "/session/$sessionId/source"},
	entities.Screenshot:                             {http.MethodGet, "/session/$sessionId/screenshot"},
	entities.ElementScreenshot:                      {http.MethodGet, "/session/$sessionId/element/$id/screenshot"},
	entities.FindElement:                            {http.MethodPost, "/session/$sessionId/element"},
	entities.FindElements:                           {http.MethodPost, "/session/$sessionId/elements"},
	entities.W3CGetActiveElement:                    {http.MethodGet, "/session/$sessionId/element/active"},
	entities.GetActiveElement:                       {http.MethodPost, "/session/$sessionId/element/active"},
	entities.FindChildElement:                       {http.MethodPost, "/session/$sessionId/element/$id/element"},
	entities.FindChildElements:                      {http.MethodPost, "/session/$sessionId/element/$id/elements"},
	entities.ClickElement:                           {http.MethodPost, "/session/$sessionId/element/$id/click"},
	entities.ClearElement:                           {http.MethodPost, "/session/$sessionId/element/$id/clear"},
	entities.SubmitElement:                          {http.MethodPost, "/session/$sessionId/element/$id/submit"},
	entities.GetElementText:                         {http.MethodGet, "/session/$sessionId/element/$id/text"},
	entities.SendKeysToElement:                      {http.MethodPost, "/session/$sessionId/element/$id/value"},
	entities.SendKeysToActiveElement:                {http.MethodPost, "/session/$sessionId/keys"},
	entities.UploadFile:                             {http.MethodPost, "/session/$sessionId/file"},
	entities.GetElementValue:                        {http.MethodGet, "/session/$sessionId/element/$id/value"},
	entities.GetElementTagName:                      {http.MethodGet, "/session/$sessionId/element/$id/name"},
	entities.IsElementSelected:                      {http.MethodGet, "/session/$sessionId/element/$id/selected"},
	entities.SetElementSelected:                     {http.MethodPost, "/session/$sessionId/element/$id/selected"},
	entities.IsElementEnabled:                       {http.MethodGet, "/session/$sessionId/element/$id/enabled"},
	entities.IsElementDisplayed:                     {http.MethodGet, "/session/$sessionId/element/$id/displayed"},
	entities.GetElementLocation:                     {http.MethodGet, "/session/$sessionId/element/$id/location"},
	entities.GetElementLocationOnceScrolledIntoView: {http.MethodGet, "/session/$sessionId/element/$id/location_in_view"},
	entities.GetElementSize:                         {http.MethodGet, "/session/$sessionId/element/$id/size"},
	entities.GetElementRect:                         {http.MethodGet, "/session/$sessionId/element/$id/rect"},
	entities.GetElementAttribute:                    {http.MethodGet, "/session/$sessionId/element/$id/attribute/$name"},
	entities.GetElementProperty:                     {http.MethodGet, "/session/$sessionId/element/$id/property/$name"},
	entities.ElementEquals:                          {http.MethodGet, "/session/$sessionId/element/$id/equals/$other"},
	entities.GetAllCookies:                          {http.MethodGet, "/session/$sessionId/cookie"},
	entities.AddCookie:                              {http.MethodPost, "/session/$sessionId/cookie"},
	entities.DeleteAllCookies:                       {http.MethodDelete, "/session/$sessionId/cookie"},
	entities.DeleteCookie:                           {http.MethodDelete, "/session/$sessionId/cookie/$name"},
	entities.SwitchToFrame:                          {http.MethodPost, "/session/$sessionId/frame"},
	entities.SwitchToParentFrame:                    {http.MethodPost, "/session/$sessionId/frame/parent"},
	entities.SwitchToWindow:                         {http.MethodPost, "/session/$sessionId/window"},
	entities.Close:                                  {http.MethodDelete, "/session/$sessionId/window"},
	entities.GetElementValueOfCSSProperty:           {http.MethodGet, "/session/$sessionId/element/$id/css/$propertyName"},
	entities.ImplicitWait:                           {http.MethodPost, "/session/$sessionId/timeouts/implicit_wait"},
	entities.ExecuteAsyncScript:                     {http.MethodPost, "/session/$sessionId/execute_async"},
	entities.SetScriptTimeout:                       {http.MethodPost, "/session/$sessionId/timeouts/async_script"},
	entities.SetTimeouts:                            {http.MethodPost, "/session/$sessionId/timeouts"},
	entities.DismissAlert:                           {http.MethodPost, "/session/$sessionId/dismiss_alert"},
	entities.W3CDismissAlert:                        {http.MethodPost, "/session/$sessionId/alert/dismiss"},
	entities.AcceptAlert:                            {http.MethodPost, "/session/$sessionId/accept_alert"},
	entities.W3CAcceptAlert:                         {http.MethodPost, "/session/$sessionId/alert/accept"},
	entities.SetAlertValue:                          {http.MethodPost, "/session/$sessionId/alert_text"},
	entities.W3CSetAlertValue:                       {http.MethodPost, "/session/$sessionId/alert/text"},
	entities.GetAlertText:                           {http.MethodGet, "/session/$sessionId/alert_text"},
	entities.W3CGetAlertText:                        {http.MethodGet, "/session/$sessionId/alert/text"},
	entities.SetAlertCredentials:                    {http.MethodPost, "/session/$sessionId/alert/credentials"},
	entities.Click:                                  {http.MethodPost, "/session/$sessionId/click"},
	entities.W3CActions:                             {http.MethodPost, "/session/$sessionId/actions"},
	entities.W3CClearActions:                        {http.MethodDelete, "/session/$sessionId/actions"},
	entities.DoubleClick:                            {http.MethodPost, "/session/$sessionId/doubleclick"},
	entities.MouseDown:                              {http.MethodPost, "/session/$sessionId/buttondown"},
	entities.MouseUp:                                {http.MethodPost, "/session/$sessionId/buttonup"},
	entities.MoveTo:                                 {http.MethodPost, "/session/$sessionId/moveto"},
	entities.GetWindowSize:                          {http.MethodGet, "/session/$sessionId/window/$windowHandle/size"},
	entities.SetWindowSize:                          {http.MethodPost, "/session/$sessionId/window/$windowHandle/size"},
	entities.GetWindowPosition:                      {http.MethodGet, "/session/$sessionId/window/$windowHandle/position"},
	entities.SetWindowPosition:                      {http.MethodPost, "/session/$sessionId/window/$windowHandle/position"},
	entities.SetWindowRect:                          {http.MethodPost, "/session/$sessionId/window/rect"},
	entities.GetWindowRect:                          {http.MethodGet, "/session/$sessionId/window/rect"},
	entities.MaximizeWindow:                         {http.MethodPost, "/session/$sessionId/window/$windowHandle/maximize"},
	entities.W3CMaximizeWindow:                      {http.MethodPost, "/session/$sessionId/window/maximize"},
	entities.SetScreenOrientation:                   {http.MethodPost, "/session/$sessionId/orientation"},
	entities.GetScreenOrientation:                   {http.MethodGet, "/session/$sessionId/orientation"},
	entities.SingleTap:                              {http.MethodPost, "/session/$sessionId/touch/click"},
	entities.TouchDown:                              {http.MethodPost, "/session/$sessionId/touch/down"},
	entities.TouchUp:                                {http.MethodPost, "/session/$sessionId/touch/up"},
	entities.TouchMove:                              {http.MethodPost, "/session/$sessionId/touch/move"},
	entities.TouchScroll:                            {http.MethodPost, "/session/$sessionId/touch/scroll"},
	entities.DoubleTap:                              {http.MethodPost, "/session/$sessionId/touch/doubleclick"},
	entities.LongPress:                              {http.MethodPost, "/session/$sessionId/touch/longclick"},
	entities.Flick:                                  {http.MethodPost, "/session/$sessionId/touch/flick"},
	entities.ExecuteSQL:                             {http.MethodPost, "/session/$sessionId/execute_sql"},
	entities.GetLocation:                            {http.MethodGet, "/session/$sessionId/location"},
	entities.SetLocation:                            {http.MethodPost, "/session/$sessionId/location"},
	entities.GetAppCache:                            {http.MethodGet, "/session/$sessionId/application_cache"},
	entities.GetAppCacheStatus:                      {http.MethodGet, "/session/$sessionId/application_cache/status"},
	entities.ClearAppCache:                          {http.MethodDelete, "/session/$sessionId/application_cache/clear"},
	entities.GetNetworkConnection:                   {http.MethodGet, "/session/$sessionId/network_connection"},
	entities.SetNetworkConnection:                   {http.MethodPost, "/session/$sessionId/network_connection"},
	entities.GetLocalStorageItem:                    {http.MethodGet, "/session/$sessionId/local_storage/key/$key"},
	entities.RemoveLocalStorageItem:                 {http.MethodDelete, "/session/$sessionId/local_storage/key/$key"},
	entities.GetLocalStorageKeys:                    {http.MethodGet, "/session/$sessionId/local_storage"},
	entities.SetLocalStorageItem:                    {http.MethodPost, "/session/$sessionId/local_storage"},
	entities.ClearLocalStorage:                      {http.MethodDelete, "/session/$sessionId/local_storage"},
	entities.GetLocalStorageSize:                    {http.MethodGet, "/session/$sessionId/local_storage/size"},
	entities.GetSessionStorageItem:                  {http.MethodGet, "/session/$sessionId/session_storage/key/$key"},
	entities.RemoveSessionStorageItem:               {http.MethodDelete, "/session/$sessionId/session_storage/key/$key"},
	entities.GetSessionStorageKeys:                  {http.MethodGet, "/session/$sessionId/session_storage"},
	entities.SetSessionStorageItem:                  {http.MethodPost, "/session/$sessionId/session_storage"},
	entities.ClearSessionStorage:                    {http.MethodDelete, "/session/$sessionId/session_storage"},
	entities.GetSessionStorageSize:                  {http.MethodGet, "/session/$sessionId/session_storage/size"},
	entities.GetLog:                                 {http.MethodPost, "/session/$sessionId/log"},
	entities.GetAvailableLogTypes:                   {http.MethodGet, "/session/$sessionId/log/types"},
	entities.CurrentContextHandle:                   {http.MethodGet, "/session/$sessionId/context"},
	entities.ContextHandles:                         {http.MethodGet, "/session/$sessionId/contexts"},
	entities.SwitchToContext:                        {http.MethodPost, "/session/$sessionId/context"},
	entities.FullscreenWindow:                       {http.MethodPost, "/session/$sessionId/window/fullscreen"},
	entities.MinimizeWindow:                         {http.MethodPost, "/session/$sessionId/window/minimize"},}

// Resolve - returns the HTTP verb and path template registered for cmd
func Resolve(cmd entities.Command) (method, path string, err error) {
	r, ok := commands[cmd]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", entities.ErrUnsupportedCommand, cmd)
	}
	return r.method, r.path, nil
}

// SupportedCommands - lists every registered command, sorted by identifier
func SupportedCommands() []entities.Command {
	out := make([]entities.Command, 0, len(commands))
	for cmd := range commands {
		out = append(out, cmd)
	}
	slices.Sort(out)
	return out
}
