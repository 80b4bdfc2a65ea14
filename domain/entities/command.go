package entities

// Command identifies an abstract remote-automation operation.
// Every value in AllCommands maps to exactly one HTTP verb and path template.
type Command string

const (
	Status                                 Command = "status"
	NewSession                             Command = "newSession"
	GetAllSessions                         Command = "getAllSessions"
	Quit                                   Command = "quit"
	GetCurrentWindowHandle                 Command = "getCurrentWindowHandle"
	W3CGetCurrentWindowHandle              Command = "w3cGetCurrentWindowHandle"
	GetWindowHandles                       Command = "getWindowHandles"
	W3CGetWindowHandles                    Command = "w3cGetWindowHandles"
	Get                                    Command = "get"
	GoForward                              Command = "goForward"
	GoBack                                 Command = "goBack"
	Refresh                                Command = "refresh"
	ExecuteScript                          Command = "executeScript"
	W3CExecuteScript                       Command = "w3cExecuteScript"
	W3CExecuteScriptAsync                  Command = "w3cExecuteScriptAsync"
	GetCurrentURL                          Command = "getCurrentUrl"
	GetTitle                               Command = "getTitle"
	GetPageSource                          Command = "getPageSource"
	Screenshot                             Command = "screenshot"
	ElementScreenshot                      Command = "elementScreenshot"
	FindElement                            Command = "findElement"
	FindElements                           Command = "findElements"
	W3CGetActiveElement                    Command = "w3cGetActiveElement"
	GetActiveElement                       Command = "getActiveElement"
	FindChildElement                       Command = "findChildElement"
	FindChildElements                      Command = "findChildElements"
	ClickElement                           Command = "clickElement"
	ClearElement                           Command = "clearElement"
	SubmitElement                          Command = "submitElement"
	GetElementText                         Command = "getElementText"
	SendKeysToElement                      Command = "sendKeysToElement"
	SendKeysToActiveElement                Command = "sendKeysToActiveElement"
	UploadFile                             Command = "uploadFile"
	GetElementValue                        Command = "getElementValue"
	GetElementTagName                      Command = "getElementTagName"
	IsElementSelected                      Command = "isElementSelected"
	SetElementSelected                     Command = "setElementSelected"
	IsElementEnabled                       Command = "isElementEnabled"
	IsElementDisplayed                     Command = "isElementDisplayed"
	GetElementLocation                     Command = "getElementLocation"
	GetElementLocationOnceScrolledIntoView Command = "getElementLocationOnceScrolledIntoView"
	GetElementSize                         Command = "getElementSize"
	GetElementRect                         Command = "getElementRect"
	GetElementAttribute                    Command = "getElementAttribute"
	GetElementProperty                     Command = "getElementProperty"
	ElementEquals                          Command = "elementEquals"
	GetAllCookies                          Command = "getCookies"
	AddCookie                              Command = "addCookie"
	DeleteAllCookies                       Command = "deleteAllCookies"
	DeleteCookie                           Command = "deleteCookie"
	SwitchToFrame                          Command = "switchToFrame"
	SwitchToParentFrame                    Command = "switchToParentFrame"
	SwitchToWindow                         Command = "switchToWindow"
	Close                                  Command = "close"
	GetElementValueOfCSSProperty           Command = "getElementValueOfCssProperty"
	ImplicitWait                           Command = "implicitlyWait"
	ExecuteAsyncScript                     Command = "executeAsyncScript"
	SetScriptTimeout                       Command = "setScriptTimeout"
	SetTimeouts                            Command = "setTimeouts"
	DismissAlert                           Command = "dismissAlert"
	W3CDismissAlert                        Command = "w3cDismissAlert"
	AcceptAlert                            Command = "acceptAlert"
	W3CAcceptAlert                         Command = "w3cAcceptAlert"
	SetAlertValue                          Command = "setAlertValue"
	W3CSetAlertValue                       Command = "w3cSetAlertValue"
	GetAlertText                           Command = "getAlertText"
	W3CGetAlertText                        Command = "w3cGetAlertText"
	SetAlertCredentials                    Command = "setAlertCredentials"
	Click                                  Command = "mouseClick"
	W3CActions                             Command = "actions"
	W3CClearActions                        Command = "clearActionState"
	DoubleClick                            Command = "mouseDoubleClick"
	MouseDown                              Command = "mouseButtonDown"
	MouseUp                                Command = "mouseButtonUp"
	MoveTo                                 Command = "mouseMoveTo"
	GetWindowSize                          Command = "getWindowSize"
	SetWindowSize                          Command = "setWindowSize"
	GetWindowPosition                      Command = "getWindowPosition"
	SetWindowPosition                      Command = "setWindowPosition"
	SetWindowRect                          Command = "setWindowRect"
	GetWindowRect                          Command = "getWindowRect"
	MaximizeWindow                         Command = "windowMaximize"
	W3CMaximizeWindow                      Command = "w3cMaximizeWindow"
	SetScreenOrientation                   Command = "setScreenOrientation"
	GetScreenOrientation                   Command = "getScreenOrientation"
	SingleTap                              Command = "touchSingleTap"
	TouchDown                              Command = "touchDown"
	TouchUp                                Command = "touchUp"
	TouchMove                              Command = "touchMove"
	TouchScroll                            Command = "touchScroll"
	DoubleTap                              Command = "touchDoubleTap"
	LongPress                              Command = "touchLongPress"
	Flick                                  Command = "touchFlick"
	ExecuteSQL                             Command = "executeSql"
	GetLocation                            Command = "getLocation"
	SetLocation                            Command = "setLocation"
	GetAppCache                            Command = "getAppCache"
	GetAppCacheStatus                      Command = "getAppCacheStatus"
	ClearAppCache                          Command = "clearAppCache"
	GetNetworkConnection                   Command = "getNetworkConnection"
	SetNetworkConnection                   Command = "setNetworkConnection"
	GetLocalStorageItem                    Command = "getLocalStorageItem"
	RemoveLocalStorageItem                 Command = "removeLocalStorageItem"
	GetLocalStorageKeys                    Command = "getLocalStorageKeys"
	SetLocalStorageItem                    Command = "setLocalStorageItem"
	ClearLocalStorage                      Command = "clearLocalStorage"
	GetLocalStorageSize                    Command = "getLocalStorageSize"
	GetSessionStorageItem                  Command = "getSessionStorageItem"
	RemoveSessionStorageItem               Command = "removeSessionStorageItem"
	GetSessionStorageKeys                  Command = "getSessionStorageKeys"
	SetSessionStorageItem                  Command = "setSessionStorageItem"
	ClearSessionStorage                    Command = "clearSessionStorage"
	GetSessionStorageSize                  Command = "getSessionStorageSize"
	GetLog                                 Command = "getLog"
	GetAvailableLogTypes                   Command = "getAvailableLogTypes"
	CurrentContextHandle                   Command = "getCurrentContextHandle"
	ContextHandles                         Command = "getContextHandles"
	SwitchToContext                        Command = "switchToContext"
	FullscreenWindow                       Command = "fullscreenWindow"
	MinimizeWindow                         Command = "minimizeWindow"
)

// AllCommands lists every Command in protocol table order.
var AllCommands = []Command{
	Status, NewSession, GetAllSessions, Quit,
	GetCurrentWindowHandle, W3CGetCurrentWindowHandle, GetWindowHandles, W3CGetWindowHandles,
	Get, GoForward, GoBack, Refresh,
	ExecuteScript, W3CExecuteScript, W3CExecuteScriptAsync,
	GetCurrentURL, GetTitle, GetPageSource, Screenshot, ElementScreenshot,
	FindElement, FindElements, W3CGetActiveElement, GetActiveElement,
	FindChildElement, FindChildElements,
	ClickElement, ClearElement, SubmitElement, GetElementText,
	SendKeysToElement, SendKeysToActiveElement, UploadFile,
	GetElementValue, GetElementTagName, IsElementSelected, SetElementSelected,
	IsElementEnabled, IsElementDisplayed, GetElementLocation,
	GetElementLocationOnceScrolledIntoView, GetElementSize, GetElementRect,
	GetElementAttribute, GetElementProperty, ElementEquals,
	GetAllCookies, AddCookie, DeleteAllCookies, DeleteCookie,
	SwitchToFrame, SwitchToParentFrame, SwitchToWindow, Close,
	GetElementValueOfCSSProperty, ImplicitWait, ExecuteAsyncScript,
	SetScriptTimeout, SetTimeouts,
	DismissAlert, W3CDismissAlert, AcceptAlert, W3CAcceptAlert,
	SetAlertValue, W3CSetAlertValue, GetAlertText, W3CGetAlertText, SetAlertCredentials,
	Click, W3CActions, W3CClearActions, DoubleClick, MouseDown, MouseUp, MoveTo,
	GetWindowSize, SetWindowSize, GetWindowPosition, SetWindowPosition,
	SetWindowRect, GetWindowRect, MaximizeWindow, W3CMaximizeWindow,
	SetScreenOrientation, GetScreenOrientation,
	SingleTap, TouchDown, TouchUp, TouchMove, TouchScroll, DoubleTap, LongPress, Flick,
	ExecuteSQL, GetLocation, SetLocation,
	GetAppCache, GetAppCacheStatus, ClearAppCache,
	GetNetworkConnection, SetNetworkConnection,
	GetLocalStorageItem, RemoveLocalStorageItem, GetLocalStorageKeys,
	SetLocalStorageItem, ClearLocalStorage, GetLocalStorageSize,
	GetSessionStorageItem, RemoveSessionStorageItem, GetSessionStorageKeys,
	SetSessionStorageItem, ClearSessionStorage, GetSessionStorageSize,
	GetLog, GetAvailableLogTypes,
	CurrentContextHandle, ContextHandles, SwitchToContext,
	FullscreenWindow, MinimizeWindow,
}

func (c Command) String() string {
	return string(c)
}

// ParseCommand looks up a Command by its identifier, e.g. "getTitle".
func ParseCommand(name string) (Command, bool) {
	for _, c := range AllCommands {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
