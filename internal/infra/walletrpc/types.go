package walletrpc

// Request and response payloads of the wallet RPC methods used by the engine.
type (
	openWalletParams struct {
		Filename string `json:"filename"`
		Password string `json:"password"`
	}

	createWalletParams struct {
		Filename string `json:"filename"`
		Password string `json:"password"`
		Language string `json:"language"`
	}

	restoreWalletParams struct {
		Filename        string `json:"filename"`
		Seed            string `json:"seed"`
		Password        string `json:"password"`
		RestoreHeight   uint64 `json:"restore_height"`
		AutosaveCurrent bool   `json:"autosave_current"`
	}

	closeWalletParams struct {
		AutosaveCurrent bool `json:"autosave_current"`
	}

	setDaemonParams struct {
		Address string `json:"address"`
	}

	refreshParams struct {
		StartHeight uint64 `json:"start_height,omitempty"`
	}

	balanceParams struct {
		AccountIndex uint32 `json:"account_index"`
	}

	transfersParams struct {
		In             bool   `json:"in"`
		Out            bool   `json:"out"`
		Pool           bool   `json:"pool"`
		FilterByHeight bool   `json:"filter_by_height"`
		MinHeight      uint64 `json:"min_height"`
	}

	// HeightResponse is the result of get_height.
	HeightResponse struct {
		Height uint64 `json:"height"`
	}

	// BalanceResponse is the result of get_balance, in atomic units.
	BalanceResponse struct {
		Balance         uint64 `json:"balance"`
		UnlockedBalance uint64 `json:"unlocked_balance"`
	}

	// RefreshResponse is the result of refresh.
	RefreshResponse struct {
		BlocksFetched uint64 `json:"blocks_fetched"`
		ReceivedMoney bool   `json:"received_money"`
	}

	// TransferResponse is one entry of get_transfers.
	TransferResponse struct {
		TxID   string `json:"txid"`
		Amount uint64 `json:"amount"`
		Height uint64 `json:"height"`
	}

	// TransfersResponse is the result of get_transfers.
	TransfersResponse struct {
		In   []TransferResponse `json:"in"`
		Out  []TransferResponse `json:"out"`
		Pool []TransferResponse `json:"pool"`
	}
)
